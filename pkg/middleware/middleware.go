package middleware

import "github.com/iansan5653/propwatch/pkg/propwatch"

// Middleware wraps a notification sink with additional behavior.
type Middleware interface {
	// Wrap returns a Notifier running the middleware around next.
	// Implementations forward exactly one downstream Notify per upstream
	// Notify.
	Wrap(next propwatch.Notifier) propwatch.Notifier
}

// MiddlewareFunc adapts a function to the Middleware interface.
type MiddlewareFunc func(next propwatch.Notifier) propwatch.Notifier

// Wrap calls f.
func (f MiddlewareFunc) Wrap(next propwatch.Notifier) propwatch.Notifier {
	return f(next)
}

// Chain wraps sink in the given middlewares, first middleware outermost:
// Chain(sink, a, b) delivers through a, then b, then sink.
func Chain(sink propwatch.Notifier, middlewares ...Middleware) propwatch.Notifier {
	for i := len(middlewares) - 1; i >= 0; i-- {
		sink = middlewares[i].Wrap(sink)
	}
	return sink
}
