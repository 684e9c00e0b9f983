// Package checksum provides a streaming observer that maintains a
// running Adler-32 checksum over every byte it sees, built on the
// standard library's hash/adler32 implementation.
package checksum

import (
	"hash"
	"hash/adler32"
)

// Observer accumulates an Adler-32 checksum across successive Observe
// calls and publishes the running value to a caller-owned cell. It
// wraps hash/adler32 directly rather than hand-rolling the rolling
// sums.
type Observer struct {
	h    hash.Hash32
	cell *uint32
}

// New returns an Observer that writes its running checksum into cell
// after every chunk. The cell is left untouched until the first chunk
// arrives, so a cell that never sees a byte (a sub-download that fails
// before any data is read) keeps its zero value rather than reporting
// the checksum of an empty input. cell may be read safely between
// Observe calls by the same goroutine that owns the Observer; the
// final value is valid once the stream has ended.
func New(cell *uint32) *Observer {
	return &Observer{h: adler32.New(), cell: cell}
}

// Observe feeds data into the running checksum and updates the cell.
func (o *Observer) Observe(data []byte) {
	o.h.Write(data)
	*o.cell = o.h.Sum32()
}

// Sum32 returns the current running checksum.
func (o *Observer) Sum32() uint32 {
	return o.h.Sum32()
}
