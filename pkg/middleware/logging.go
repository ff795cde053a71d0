package middleware

import (
	"log/slog"

	"github.com/iansan5653/propwatch/pkg/propwatch"
)

// Logging creates middleware that writes a debug line per notification.
// The seq attribute counts deliveries through this wrapper, so interleaved
// log output can be tied back to write order. A nil logger uses
// slog.Default().
func Logging(logger *slog.Logger, sink string) Middleware {
	if logger == nil {
		logger = slog.Default()
	}

	return MiddlewareFunc(func(next propwatch.Notifier) propwatch.Notifier {
		var seq uint64

		return propwatch.NotifierFunc(func() {
			seq++
			logger.Debug("notification delivered", "sink", sink, "seq", seq)
			next.Notify()
		})
	})
}
