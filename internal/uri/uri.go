package uri

import (
	"regexp"
	"strconv"
	"strings"
)

// URI is a parsed, field-wise representation of a discovered or seed
// locator. Parse never fails: an unparseable input simply yields a URI
// whose fields are all empty.
type URI struct {
	Scheme   string
	User     string
	Password string
	Host     string
	Port     uint16
	Path     string
	Query    string
	Fragment string
}

// uriRegex captures each field in one pass, in declaration order:
// scheme, user, password, host, port, path, query, fragment.
var uriRegex = regexp.MustCompile(
	`^` +
		`(([A-Za-z0-9]+)://)?` + // 2: scheme
		`(([A-Za-z0-9]+)(:([A-Za-z0-9]+))?@)?` + // 4: user, 6: password
		`([A-Za-z%0-9.-]+)?` + // 7: host
		`(:([0-9]+))?` + // 9: port
		`([^?#]*)` + // 10: path
		`(\?([^#]*))?` + // 12: query
		`(#(.*))?` + // 14: fragment
		`$`,
)

// Parse applies the registered expression to input and builds a URI
// from the capture groups. A non-matching input (which, given the
// expression's optional groups and catch-all path group, only happens
// when a line break follows the fragment's '#') yields an all-empty
// URI with Port 0.
func Parse(input string) URI {
	m := uriRegex.FindStringSubmatch(input)
	if m == nil {
		return URI{}
	}

	var port uint16
	if m[9] != "" {
		// The expression restricts this group to [0-9]+, so the only
		// possible parse error is a value above 65535; Port then stays 0.
		if v, err := strconv.ParseUint(m[9], 10, 16); err == nil {
			port = uint16(v)
		}
	}

	return URI{
		Scheme:   m[2],
		User:     m[4],
		Password: m[6],
		Host:     m[7],
		Port:     port,
		Path:     m[10],
		Query:    m[12],
		Fragment: m[14],
	}
}

// Equal reports whether two URIs are structurally identical, field by
// field.
func (u URI) Equal(other URI) bool {
	return u == other
}

// String serializes u into its canonical form:
// scheme://[user[:password]@]host[:port]path[?query][#fragment],
// omitting empty parts and the host:port block entirely when host is
// empty.
func (u URI) String() string {
	var b strings.Builder

	if u.Scheme != "" {
		b.WriteString(u.Scheme)
		b.WriteString("://")
	}

	if u.Host != "" {
		if u.User != "" {
			b.WriteString(u.User)
			if u.Password != "" {
				b.WriteByte(':')
				b.WriteString(u.Password)
			}
			b.WriteByte('@')
		}
		b.WriteString(u.Host)
		if u.Port != 0 {
			b.WriteByte(':')
			b.WriteString(strconv.FormatUint(uint64(u.Port), 10))
		}
	}

	b.WriteString(u.Path)

	if u.Query != "" {
		b.WriteByte('?')
		b.WriteString(u.Query)
	}
	if u.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.Fragment)
	}

	return b.String()
}
