package propwatch

// ListTarget is the raw indexed storage a List wraps. Like Target, it does
// not notify and may silently refuse any mutation; wrappers verify by
// reading back.
type ListTarget[V any] interface {
	// At returns the element at index i, if 0 <= i < Len.
	At(i int) (V, bool)

	// Put sets the element at i. i == Len grows the target by one.
	// Out-of-range writes are dropped.
	Put(i int, value V)

	// Insert places value before index i and shifts later elements right.
	// Valid positions are 0..Len; i == Len appends. Out-of-range inserts
	// are dropped.
	Insert(i int, value V)

	// Remove deletes the element at i and shifts later elements left.
	Remove(i int)

	// SetLen truncates the target to n elements. Growth requests and
	// negative lengths are dropped.
	SetLen(n int)

	// Len returns the number of elements.
	Len() int
}

// sliceTarget is the default slice-backed ListTarget.
type sliceTarget[V any] struct {
	items []V
}

// NewSliceTarget creates a slice-backed ListTarget seeded with a copy of
// initial.
func NewSliceTarget[V any](initial []V) ListTarget[V] {
	items := make([]V, len(initial))
	copy(items, initial)
	return &sliceTarget[V]{items: items}
}

func (t *sliceTarget[V]) At(i int) (V, bool) {
	if i < 0 || i >= len(t.items) {
		var zero V
		return zero, false
	}
	return t.items[i], true
}

func (t *sliceTarget[V]) Put(i int, value V) {
	switch {
	case i >= 0 && i < len(t.items):
		t.items[i] = value
	case i == len(t.items):
		t.items = append(t.items, value)
	}
}

func (t *sliceTarget[V]) Insert(i int, value V) {
	if i < 0 || i > len(t.items) {
		return
	}
	var zero V
	t.items = append(t.items, zero)
	copy(t.items[i+1:], t.items[i:])
	t.items[i] = value
}

func (t *sliceTarget[V]) Remove(i int) {
	if i < 0 || i >= len(t.items) {
		return
	}
	copy(t.items[i:], t.items[i+1:])
	// Release the vacated tail slot before shrinking.
	var zero V
	t.items[len(t.items)-1] = zero
	t.items = t.items[:len(t.items)-1]
}

func (t *sliceTarget[V]) SetLen(n int) {
	if n < 0 || n > len(t.items) {
		return
	}
	tail := t.items[n:]
	for i := range tail {
		var zero V
		tail[i] = zero
	}
	t.items = t.items[:n]
}

func (t *sliceTarget[V]) Len() int {
	return len(t.items)
}

// frozenListTarget passes reads through and silently drops mutations.
type frozenListTarget[V any] struct {
	target ListTarget[V]
}

// FreezeList returns a read-only view of t, the indexed counterpart of
// Freeze.
func FreezeList[V any](t ListTarget[V]) ListTarget[V] {
	return &frozenListTarget[V]{target: t}
}

func (f *frozenListTarget[V]) At(i int) (V, bool)    { return f.target.At(i) }
func (f *frozenListTarget[V]) Put(i int, value V)    {}
func (f *frozenListTarget[V]) Insert(i int, value V) {}
func (f *frozenListTarget[V]) Remove(i int)          {}
func (f *frozenListTarget[V]) SetLen(n int)          {}
func (f *frozenListTarget[V]) Len() int              { return f.target.Len() }
