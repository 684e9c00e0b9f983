// Package release provides a scoped guard that runs a nullary callable
// exactly once when its enclosing scope exits, regardless of exit path.
//
// It is the Go stand-in for the deferred_action/run_at_eos helper that
// the core pairs with every externally acquired handle (HTTP response
// bodies, files) so release happens on every return path,
// including a panic.
package release

import "sync"

// Guard holds a release function and ensures it runs at most once.
//
// The idiomatic way to use a Guard is to defer its Run immediately
// after acquiring the resource it protects:
//
//	f, err := os.Create(name)
//	if err != nil {
//		return err
//	}
//	g := release.New(func() { f.Close() })
//	defer g.Run()
type Guard struct {
	once sync.Once
	fn   func()
}

// New returns a Guard wrapping fn. fn is not invoked until Run is
// called.
func New(fn func()) *Guard {
	return &Guard{fn: fn}
}

// Run invokes the wrapped function. Subsequent calls are no-ops: a
// single Guard instance releases its resource exactly once, even if
// Run is called from multiple defer sites along different exit paths.
func (g *Guard) Run() {
	g.once.Do(g.fn)
}
