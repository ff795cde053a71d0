package propwatch

// List wraps an indexed ListTarget and intercepts element access. It is the
// array counterpart of Container, with the array's implicit length side
// channel replaced by explicit operations: Set on the one-past-end index
// inserts, Remove shifts, Truncate cuts, Pop removes the last element.
// Each operation performs one verified mutation and at most one
// notification.
type List[V any] struct {
	id     uint64
	target ListTarget[V]
	sink   Notifier

	// equal is the equality function used to verify a write's echo.
	// If nil, uses default equality checking.
	equal func(V, V) bool
}

// NewList wraps target, delivering write notifications to sink.
// Construction does not notify.
func NewList[V any](target ListTarget[V], sink Notifier) *List[V] {
	if target == nil {
		panic("propwatch: NewList requires a non-nil target")
	}
	if sink == nil {
		panic("propwatch: NewList requires a non-nil sink (use Discard for none)")
	}
	return &List[V]{
		id:     nextID(),
		target: target,
		sink:   sink,
	}
}

// At returns the element at index i. Reads never notify.
func (l *List[V]) At(i int) (V, bool) {
	return l.target.At(i)
}

// Len returns the number of elements.
func (l *List[V]) Len() int {
	return l.target.Len()
}

// Values returns a copy of the elements.
func (l *List[V]) Values() []V {
	out := make([]V, l.target.Len())
	for i := range out {
		out[i], _ = l.target.At(i)
	}
	return out
}

// Set writes value at index i and verifies the echo. Valid indices are
// 0..Len inclusive; i == Len grows the list by one. Out-of-range indices
// and refused writes return false without notifying.
func (l *List[V]) Set(i int, value V) bool {
	if !l.put(i, value) {
		return false
	}
	l.sink.Notify()
	return true
}

// Append inserts value after the last element. Equivalent to Set(Len(), v).
func (l *List[V]) Append(value V) bool {
	return l.Set(l.target.Len(), value)
}

// Insert places value before index i, shifting later elements right.
// Inserting at Len appends. Success means the list grew and the element
// echoes at i; out-of-range positions and refused inserts return false
// without notifying.
func (l *List[V]) Insert(i int, value V) bool {
	if !l.insert(i, value) {
		return false
	}
	l.sink.Notify()
	return true
}

// Remove deletes the element at i, shifting later elements left. Success
// means the list shrank; a refused or out-of-range removal returns false
// without notifying.
func (l *List[V]) Remove(i int) bool {
	if !l.remove(i) {
		return false
	}
	l.sink.Notify()
	return true
}

// Pop removes and returns the last element. The removal and the length
// adjustment are one operation with one notification. Popping an empty
// list returns the zero value and false without notifying.
func (l *List[V]) Pop() (V, bool) {
	var zero V
	n := l.target.Len()
	if n == 0 {
		return zero, false
	}
	value, ok := l.target.At(n - 1)
	if !ok || !l.remove(n-1) {
		return zero, false
	}
	l.sink.Notify()
	return value, true
}

// Truncate cuts the list to n elements. Truncating to the current length
// is a valid write and still notifies. Growth requests, negative lengths,
// and refused truncations return false without notifying.
func (l *List[V]) Truncate(n int) bool {
	if !l.truncate(n) {
		return false
	}
	l.sink.Notify()
	return true
}

// WithEquals returns the list configured with a custom echo equality
// function.
func (l *List[V]) WithEquals(fn func(V, V) bool) *List[V] {
	l.equal = fn
	return l
}

// ID returns the unique identifier for this list.
func (l *List[V]) ID() uint64 {
	return l.id
}

// put writes through the target and reports whether the write took hold.
// It does not notify; callers order their own side effects around it.
func (l *List[V]) put(i int, value V) bool {
	if i < 0 || i > l.target.Len() {
		return false
	}
	l.target.Put(i, value)
	echo, ok := l.target.At(i)
	return ok && l.equals(echo, value)
}

// insert writes through the target and reports whether the list grew and
// the element echoes at i. It does not notify.
func (l *List[V]) insert(i int, value V) bool {
	n := l.target.Len()
	if i < 0 || i > n {
		return false
	}
	l.target.Insert(i, value)
	if l.target.Len() != n+1 {
		return false
	}
	echo, ok := l.target.At(i)
	return ok && l.equals(echo, value)
}

// remove deletes through the target and reports whether the list shrank.
// It does not notify.
func (l *List[V]) remove(i int) bool {
	n := l.target.Len()
	if i < 0 || i >= n {
		return false
	}
	l.target.Remove(i)
	return l.target.Len() == n-1
}

// truncate cuts through the target and reports whether the length echoed.
// It does not notify.
func (l *List[V]) truncate(n int) bool {
	if n < 0 || n > l.target.Len() {
		return false
	}
	l.target.SetLen(n)
	return l.target.Len() == n
}

// equals checks write echoes using the configured equality function.
func (l *List[V]) equals(a, b V) bool {
	if l.equal != nil {
		return l.equal(a, b)
	}
	return defaultEquals(a, b)
}
