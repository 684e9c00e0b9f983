package checksum

import "testing"

func TestObserver_WikipediaVector(t *testing.T) {
	t.Parallel()

	const want = uint32(0x11E60398)

	splits := [][]string{
		{"Wikipedia"},
		{"Wik", "ipedia"},
		{"Wik", "ip", "edia"},
		{"Wik", "ip", "ed", "ia"},
	}

	for _, parts := range splits {
		var cell uint32
		o := New(&cell)
		for _, p := range parts {
			o.Observe([]byte(p))
		}
		if cell != want {
			t.Errorf("split %v: cell = 0x%X, want 0x%X", parts, cell, want)
		}
		if o.Sum32() != want {
			t.Errorf("split %v: Sum32() = 0x%X, want 0x%X", parts, o.Sum32(), want)
		}
	}
}

func TestObserver_SplitInvariance(t *testing.T) {
	t.Parallel()

	data := []byte("the quick brown fox jumps over the lazy dog")

	var whole uint32
	single := New(&whole)
	single.Observe(data)

	splitPoints := []int{3, 2, 4, 10, 7, 5, len(data)}
	var split uint32
	o := New(&split)
	offset := 0
	for _, n := range splitPoints {
		if offset >= len(data) {
			break
		}
		end := offset + n
		if end > len(data) {
			end = len(data)
		}
		o.Observe(data[offset:end])
		offset = end
	}
	if offset < len(data) {
		o.Observe(data[offset:])
	}

	if split != whole {
		t.Errorf("split checksum 0x%X != single-shot checksum 0x%X", split, whole)
	}
}
