package propwatch

// Notifier is anything that can be told a watched value changed.
// Notify carries no payload: the contract is "something you watch changed,
// look for yourself", which keeps sinks composable and lets a single sink
// serve an arbitrary subgraph.
type Notifier interface {
	// Notify signals that a watched value was written. It is called
	// synchronously on the writing goroutine, after the write has been
	// applied, once per successful mutating operation.
	Notify()
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func()

// Notify calls f.
func (f NotifierFunc) Notify() { f() }

// Discard is a Notifier that does nothing. Constructors in this package
// reject nil sinks, so a caller that has nowhere to deliver notifications
// yet must say so explicitly by passing Discard.
var Discard Notifier = NotifierFunc(func() {})
