package crawler

// Record is the mutable cell associated with one URI discovered while
// crawling. It is created when the URI is first seen, mutated only by
// the single sub-download job that owns it, and read by the reporter
// once the job pool has drained.
type Record struct {
	// Filename is the local storage name, assigned by the crawler
	// before the sub-download starts.
	Filename string

	// Checksum is the running Adler-32 value over the resource's bytes.
	Checksum uint32

	// Size is the total number of bytes received for the resource.
	Size uint64

	// Success reports whether the sub-download completed without error.
	Success bool
}

// table is the mapping from discovered URI string to its Record. It is
// written only by the crawler's single producer goroutine while
// parsing, and read only after the job pool has drained -- no locking
// is needed under that discipline, and none is added here.
type table map[string]*Record

// insertIfAbsent inserts a fresh Record for key if one is not already
// present, returning whether the insertion happened and a pointer to
// the slot either way.
func (t table) insertIfAbsent(key string) (inserted bool, rec *Record) {
	if rec, ok := t[key]; ok {
		return false, rec
	}
	rec = &Record{}
	t[key] = rec
	return true, rec
}
