package propwatch

// Scalar is an observed single value. Every write through Set or Update
// invokes the sink exactly once, whether or not the value changed; reads
// have no side effects. Scalar writes cannot fail.
type Scalar[T any] struct {
	id    uint64
	value T
	sink  Notifier
}

// NewScalar creates a scalar with the given initial value, delivering write
// notifications to sink. Construction does not notify.
func NewScalar[T any](initial T, sink Notifier) *Scalar[T] {
	if sink == nil {
		panic("propwatch: NewScalar requires a non-nil sink (use Discard for none)")
	}
	return &Scalar[T]{
		id:    nextID(),
		value: initial,
		sink:  sink,
	}
}

// Get returns the current value.
func (s *Scalar[T]) Get() T {
	return s.value
}

// Set stores value and notifies the sink. There is no change check: writing
// the value already stored still notifies, so sinks see every write, not
// every distinct value.
func (s *Scalar[T]) Set(value T) {
	s.value = value
	s.sink.Notify()
}

// Update rewrites the value through fn and notifies the sink once.
func (s *Scalar[T]) Update(fn func(T) T) {
	s.value = fn(s.value)
	s.sink.Notify()
}

// ID returns the unique identifier for this scalar.
func (s *Scalar[T]) ID() uint64 {
	return s.id
}

// BoolScalar wraps Scalar[bool] with convenience methods for boolean
// operations.
type BoolScalar struct {
	*Scalar[bool]
}

// NewBoolScalar creates a new BoolScalar with the given initial value.
func NewBoolScalar(initial bool, sink Notifier) *BoolScalar {
	return &BoolScalar{NewScalar(initial, sink)}
}

// Toggle inverts the boolean value.
func (s *BoolScalar) Toggle() {
	s.Update(func(b bool) bool { return !b })
}

// SetTrue sets the value to true.
func (s *BoolScalar) SetTrue() {
	s.Set(true)
}

// SetFalse sets the value to false.
func (s *BoolScalar) SetFalse() {
	s.Set(false)
}
