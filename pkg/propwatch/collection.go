package propwatch

// NodeList is a List whose elements are themselves observed entities.
// Inserting an element rebinds the element's Node to this collection's
// sink BEFORE the insertion is announced, so by the time the sink runs,
// the new element's own notifications already flow to it. Removal does not
// unwire: a removed element keeps its last binding until someone rebinds
// it.
//
// Element echoes are compared by Node identity, not by value.
type NodeList[T Observed] struct {
	inner *List[T]
	sink  Notifier
}

// NewNodeList wraps target, delivering notifications to sink. Construction
// wires nothing and does not notify; use NewNodeListRef when the initial
// elements must be adopted.
func NewNodeList[T Observed](target ListTarget[T], sink Notifier) *NodeList[T] {
	inner := NewList(target, sink)
	inner.WithEquals(func(a, b T) bool {
		return a.AsNode() == b.AsNode()
	})
	return &NodeList[T]{
		inner: inner,
		sink:  sink,
	}
}

// At returns the element at index i. Reads never notify.
func (l *NodeList[T]) At(i int) (T, bool) {
	return l.inner.At(i)
}

// Len returns the number of elements.
func (l *NodeList[T]) Len() int {
	return l.inner.Len()
}

// Values returns a copy of the elements.
func (l *NodeList[T]) Values() []T {
	return l.inner.Values()
}

// Set writes elem at index i (i == Len inserts). On success the element is
// rebound to the collection's sink first and the sink is notified second,
// exactly once. Refused writes return false with no rebinding and no
// notification.
func (l *NodeList[T]) Set(i int, elem T) bool {
	if !l.inner.put(i, elem) {
		return false
	}
	elem.AsNode().Bind(l.sink)
	l.sink.Notify()
	return true
}

// Append inserts elem after the last element, rebinding it like Set.
func (l *NodeList[T]) Append(elem T) bool {
	return l.Set(l.inner.Len(), elem)
}

// Insert places elem before index i, shifting later elements right and
// rebinding elem like Set.
func (l *NodeList[T]) Insert(i int, elem T) bool {
	if !l.inner.insert(i, elem) {
		return false
	}
	elem.AsNode().Bind(l.sink)
	l.sink.Notify()
	return true
}

// Remove deletes the element at i. The removed element is not unwired.
func (l *NodeList[T]) Remove(i int) bool {
	return l.inner.Remove(i)
}

// Pop removes and returns the last element in one operation with one
// notification. The removed element is not unwired.
func (l *NodeList[T]) Pop() (T, bool) {
	return l.inner.Pop()
}

// Truncate cuts the collection to n elements. No rebinding happens: no
// element was inserted.
func (l *NodeList[T]) Truncate(n int) bool {
	return l.inner.Truncate(n)
}

// ID returns the unique identifier for this collection.
func (l *NodeList[T]) ID() uint64 {
	return l.inner.ID()
}

// NodeListRef is the replaceable slot for a composite's element collection.
// Unlike the plain refs it notifies at construction: adopting the initial
// elements is the composite's first observable act, and it happens wiring
// first, announcement second, so a sink inspecting the composite during
// that first notification already sees every element bound.
type NodeListRef[T Observed] struct {
	id      uint64
	sink    Notifier
	wrapper *NodeList[T]
}

// NewNodeListRef creates a ref wrapping target. Every element of target is
// rebound to sink, then sink is notified exactly once.
func NewNodeListRef[T Observed](target ListTarget[T], sink Notifier) *NodeListRef[T] {
	if sink == nil {
		panic("propwatch: NewNodeListRef requires a non-nil sink (use Discard for none)")
	}
	r := &NodeListRef[T]{
		id:      nextID(),
		sink:    sink,
		wrapper: NewNodeList(target, sink),
	}
	r.rebindAll()
	r.sink.Notify()
	return r
}

// Get returns the current wrapper.
func (r *NodeListRef[T]) Get() *NodeList[T] {
	return r.wrapper
}

// Set replaces the element collection wholesale. A fresh wrapper is built,
// every element of the new target is rebound to the sink, and only then is
// the sink notified, exactly once. Elements of the replaced collection are
// not unwired.
func (r *NodeListRef[T]) Set(target ListTarget[T]) {
	r.wrapper = NewNodeList(target, r.sink)
	r.rebindAll()
	r.sink.Notify()
}

// ID returns the unique identifier for this ref.
func (r *NodeListRef[T]) ID() uint64 {
	return r.id
}

// rebindAll points every current element's Node at the ref's sink.
func (r *NodeListRef[T]) rebindAll() {
	for i := 0; i < r.wrapper.Len(); i++ {
		elem, ok := r.wrapper.At(i)
		if !ok {
			continue
		}
		elem.AsNode().Bind(r.sink)
	}
}
