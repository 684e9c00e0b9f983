package size

import "testing"

func TestObserver_Accumulates(t *testing.T) {
	t.Parallel()

	var cell uint64
	o := New(&cell)

	o.Observe([]byte("abc"))
	o.Observe([]byte(""))
	o.Observe([]byte("de"))

	if cell != 5 {
		t.Errorf("cell = %d, want 5", cell)
	}
}

func TestObserver_StartsAtZero(t *testing.T) {
	t.Parallel()

	cell := uint64(123)
	New(&cell)

	if cell != 0 {
		t.Errorf("cell = %d, want 0 after New", cell)
	}
}
