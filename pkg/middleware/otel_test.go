package middleware

import (
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestOpenTelemetryForwards(t *testing.T) {
	// Without an SDK the global provider is a no-op; delivery must still
	// happen.
	terminal := &countingSink{}
	sink := Chain(terminal, OpenTelemetry(
		WithTracerName("test"),
		WithSpanName("test.notify"),
		WithAttributes(attribute.String("sink", "terminal")),
	))

	sink.Notify()
	sink.Notify()

	if terminal.count != 2 {
		t.Errorf("expected 2 deliveries, got %d", terminal.count)
	}
}

func TestOpenTelemetryFilterStillForwards(t *testing.T) {
	// The filter skips the span, never the notification.
	terminal := &countingSink{}
	filtered := 0
	sink := Chain(terminal, OpenTelemetry(WithFilter(func() bool {
		filtered++
		return false
	})))

	sink.Notify()
	sink.Notify()
	sink.Notify()

	if filtered != 3 {
		t.Errorf("expected filter consulted 3 times, got %d", filtered)
	}
	if terminal.count != 3 {
		t.Errorf("expected 3 deliveries despite filtering, got %d", terminal.count)
	}
}
