// Package size provides a streaming observer that counts the total
// number of bytes it has seen.
package size

// Observer accumulates a running byte count across successive Observe
// calls and publishes it to a caller-owned cell.
type Observer struct {
	cell *uint64
}

// New returns an Observer that writes its running count into cell
// after every chunk.
func New(cell *uint64) *Observer {
	*cell = 0
	return &Observer{cell: cell}
}

// Observe adds len(data) to the running count.
func (o *Observer) Observe(data []byte) {
	*o.cell += uint64(len(data))
}
