package crawler

// attributeMap is the static mapping from a lowercase element name to
// the single attribute whose value is treated as a content URI.
var attributeMap = map[string]string{
	"a":      "href",
	"img":    "src",
	"script": "src",
	"iframe": "src",
}

// isTokenChar reports whether ch is a valid element/attribute name
// character: letters, digits, hyphen, or colon.
func isTokenChar(ch byte) bool {
	switch {
	case 'a' <= ch && ch <= 'z':
		return true
	case 'A' <= ch && ch <= 'Z':
		return true
	case '0' <= ch && ch <= '9':
		return true
	case ch == '-' || ch == ':':
		return true
	default:
		return false
	}
}

func toLowerByte(ch byte) byte {
	if 'A' <= ch && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}

// lookupAttribute returns the registered attribute name for element
// and whether one is registered at all.
func lookupAttribute(element string) (attr string, ok bool) {
	attr, ok = attributeMap[element]
	return attr, ok
}
