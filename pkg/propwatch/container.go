package propwatch

// Container wraps a keyed Target and intercepts member access. Reads pass
// straight through; writes go through the target and are then verified by
// reading the member back. Only a verified write notifies the sink, and a
// write the target refused reports false instead of raising an error.
//
// The raw target is never handed out: every path to the data runs through
// the wrapper, which is what makes the notification guarantee total.
type Container[K comparable, V any] struct {
	id     uint64
	target Target[K, V]
	sink   Notifier

	// equal is the equality function used to verify a write's echo.
	// If nil, uses default equality checking.
	equal func(V, V) bool
}

// NewContainer wraps target, delivering write notifications to sink.
// Construction does not notify.
func NewContainer[K comparable, V any](target Target[K, V], sink Notifier) *Container[K, V] {
	if target == nil {
		panic("propwatch: NewContainer requires a non-nil target")
	}
	if sink == nil {
		panic("propwatch: NewContainer requires a non-nil sink (use Discard for none)")
	}
	return &Container[K, V]{
		id:     nextID(),
		target: target,
		sink:   sink,
	}
}

// Get returns the member stored under key. Reads never notify.
func (c *Container[K, V]) Get(key K) (V, bool) {
	return c.target.Load(key)
}

// Has reports whether key is present.
func (c *Container[K, V]) Has(key K) bool {
	_, ok := c.target.Load(key)
	return ok
}

// Set writes value under key and verifies the write took hold by reading
// the member back. If the echo equals the written value the sink is
// notified once and Set returns true; otherwise the target refused the
// write, nothing is notified, and Set returns false.
//
// The check is on the echo, not on prior state: writing a frozen member
// the value it already holds echoes correctly and therefore succeeds.
func (c *Container[K, V]) Set(key K, value V) bool {
	c.target.Store(key, value)
	echo, ok := c.target.Load(key)
	if !ok || !c.equals(echo, value) {
		return false
	}
	c.sink.Notify()
	return true
}

// Delete removes key and verifies the member is gone. An absent member
// after the delete counts as success and notifies once, whether or not the
// key existed beforehand; a member that survives the delete means the
// target refused, and Delete returns false without notifying.
func (c *Container[K, V]) Delete(key K) bool {
	c.target.Delete(key)
	if _, ok := c.target.Load(key); ok {
		return false
	}
	c.sink.Notify()
	return true
}

// Len returns the number of members.
func (c *Container[K, V]) Len() int {
	return c.target.Len()
}

// Keys returns the member keys in unspecified order.
func (c *Container[K, V]) Keys() []K {
	return c.target.Keys()
}

// WithEquals returns the container configured with a custom echo equality
// function. This is useful for value types where reflect.DeepEqual is too
// expensive or has incorrect semantics.
func (c *Container[K, V]) WithEquals(fn func(V, V) bool) *Container[K, V] {
	c.equal = fn
	return c
}

// ID returns the unique identifier for this container.
func (c *Container[K, V]) ID() uint64 {
	return c.id
}

// equals checks write echoes using the configured equality function.
func (c *Container[K, V]) equals(a, b V) bool {
	if c.equal != nil {
		return c.equal(a, b)
	}
	return defaultEquals(a, b)
}
