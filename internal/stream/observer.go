// Package stream defines the observer contract that lets a single byte
// stream feed several consumers (a file writer, a checksum accumulator,
// a size accumulator, the HTML crawler) without re-buffering the body.
package stream

// Observer consumes successive chunks of a byte stream. Observe may be
// called any number of times with contiguous, non-overlapping chunks;
// it must not retain data beyond the call, since the caller may reuse
// the backing array for the next chunk.
type Observer interface {
	Observe(data []byte)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(data []byte)

// Observe calls f(data).
func (f ObserverFunc) Observe(data []byte) { f(data) }

// Composite forwards every Observe call to each of its inner observers
// in declaration order. Composition is n-ary: a Composite can itself be
// nested as an Observer in another Composite.
type Composite struct {
	observers []Observer
}

// NewComposite builds a Composite that fans out to observers, in the
// order given.
func NewComposite(observers ...Observer) *Composite {
	return &Composite{observers: observers}
}

// Observe forwards data to each inner observer in turn.
func (c *Composite) Observe(data []byte) {
	for _, o := range c.observers {
		o.Observe(data)
	}
}
