package propwatch

// ContainerRef is a replaceable container slot. It owns the current wrapper
// around whatever target was assigned last; Get only ever returns the
// wrapper, so callers cannot reach a raw target through the ref. Replacing
// the target is itself an observed write.
type ContainerRef[K comparable, V any] struct {
	id      uint64
	sink    Notifier
	wrapper *Container[K, V]

	// equal is forwarded to every wrapper this ref builds.
	equal func(V, V) bool
}

// NewContainerRef creates a ref wrapping target. The initial wrap happens
// here, at construction, and does not notify.
func NewContainerRef[K comparable, V any](target Target[K, V], sink Notifier) *ContainerRef[K, V] {
	if sink == nil {
		panic("propwatch: NewContainerRef requires a non-nil sink (use Discard for none)")
	}
	return &ContainerRef[K, V]{
		id:      nextID(),
		sink:    sink,
		wrapper: NewContainer(target, sink),
	}
}

// Get returns the current wrapper.
func (r *ContainerRef[K, V]) Get() *Container[K, V] {
	return r.wrapper
}

// Set replaces the backing target wholesale. The previous wrapper is
// discarded, a fresh wrapper is built around target bound to the same
// sink, and the sink is notified exactly once. Writes to a replaced
// target, or through a stale wrapper obtained before the replacement,
// keep that wrapper's contract but no longer affect what Get returns.
func (r *ContainerRef[K, V]) Set(target Target[K, V]) {
	wrapper := NewContainer(target, r.sink)
	if r.equal != nil {
		wrapper.WithEquals(r.equal)
	}
	r.wrapper = wrapper
	r.sink.Notify()
}

// WithEquals configures the echo equality function used by the current
// wrapper and every wrapper built by future Set calls.
func (r *ContainerRef[K, V]) WithEquals(fn func(V, V) bool) *ContainerRef[K, V] {
	r.equal = fn
	r.wrapper.WithEquals(fn)
	return r
}

// ID returns the unique identifier for this ref.
func (r *ContainerRef[K, V]) ID() uint64 {
	return r.id
}

// ListRef is the indexed counterpart of ContainerRef.
type ListRef[V any] struct {
	id      uint64
	sink    Notifier
	wrapper *List[V]

	equal func(V, V) bool
}

// NewListRef creates a ref wrapping target without notifying.
func NewListRef[V any](target ListTarget[V], sink Notifier) *ListRef[V] {
	if sink == nil {
		panic("propwatch: NewListRef requires a non-nil sink (use Discard for none)")
	}
	return &ListRef[V]{
		id:      nextID(),
		sink:    sink,
		wrapper: NewList(target, sink),
	}
}

// Get returns the current wrapper.
func (r *ListRef[V]) Get() *List[V] {
	return r.wrapper
}

// Set replaces the backing target wholesale, rebuilding the wrapper and
// notifying the sink exactly once.
func (r *ListRef[V]) Set(target ListTarget[V]) {
	wrapper := NewList(target, r.sink)
	if r.equal != nil {
		wrapper.WithEquals(r.equal)
	}
	r.wrapper = wrapper
	r.sink.Notify()
}

// WithEquals configures the echo equality function used by the current
// wrapper and every wrapper built by future Set calls.
func (r *ListRef[V]) WithEquals(fn func(V, V) bool) *ListRef[V] {
	r.equal = fn
	r.wrapper.WithEquals(fn)
	return r
}

// ID returns the unique identifier for this ref.
func (r *ListRef[V]) ID() uint64 {
	return r.id
}
