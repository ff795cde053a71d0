// Package propwatch provides observation of property writes on plain Go
// values. Every mutation made through one of its wrappers synchronously
// invokes a notification sink before the mutating call returns, so a caller
// always knows that by the time Set returns, whoever watches the value has
// already run.
//
// # Core Types
//
// Scalar[T] is an observed single value:
//
//	color := NewScalar("#ff0000", sink)
//	v := color.Get()   // Read (no side effects)
//	color.Set("#00ff00") // Write (notifies sink, always)
//
// Container[K, V] wraps a keyed Target and intercepts member writes. A write
// succeeds only if reading the member back yields the written value:
//
//	coords := NewContainer(NewMapTarget(map[string]float64{"x": 0}), sink)
//	ok := coords.Set("x", 10) // true, sink notified
//
// List[V] is the indexed counterpart over a ListTarget, with explicit
// insertion, removal, and truncation operations.
//
// ContainerRef / ListRef / NodeListRef hold a backing target that can be
// replaced wholesale; the replacement is itself an observed write, and
// readers only ever see the wrapped view.
//
// NodeList[T] manages elements that are themselves observed (anything
// implementing Observed): inserting an element rebinds its Node to the
// collection's sink before the insertion is announced, so notifications from
// the element flow upward from that point on.
//
// # Notification Model
//
// Notification is synchronous, unbatched, and undeduplicated. N member
// writes produce N sink invocations, identical-value scalar writes included.
// A write the backing target refuses (see Freeze) produces no notification
// and reports failure through its return value; no operation in this package
// returns an error.
//
// # Concurrency
//
// All types in this package are confined to a single goroutine. There is no
// internal locking and no notification queue; a sink runs on the goroutine
// that performed the write. Callers that need cross-goroutine mutation must
// serialize access themselves.
package propwatch
