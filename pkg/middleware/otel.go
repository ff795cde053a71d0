package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/iansan5653/propwatch/pkg/propwatch"
)

// Default tracer name for propwatch instrumentation.
const defaultTracerName = "propwatch"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "propwatch").
	TracerName string

	// SpanName is the name of the span opened per notification
	// (default: "propwatch.notify").
	SpanName string

	// Attributes are attached to every span. Notifications carry no
	// payload, so attributes describe the wrapped sink, not the write.
	Attributes []attribute.KeyValue

	// Filter determines which notifications to trace. Return false to
	// skip the span; the notification itself is always forwarded.
	// If nil, all notifications are traced.
	Filter func() bool

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithSpanName sets the per-notification span name.
func WithSpanName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.SpanName = name
	}
}

// WithAttributes sets attributes attached to every span.
func WithAttributes(attrs ...attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.Attributes = attrs
	}
}

// WithFilter sets a filter function for notifications.
func WithFilter(filter func() bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// defaultOTelConfig returns the default OpenTelemetry configuration.
func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName: defaultTracerName,
		SpanName:   "propwatch.notify",
	}
}

// OpenTelemetry creates middleware that opens a span around every
// notification. Sinks run synchronously on the writing goroutine and have
// no inbound context, so each span starts a fresh trace rooted at the
// notification.
//
// The tracer uses the global OpenTelemetry tracer provider. Without an SDK
// installed the spans are no-ops. Configure a provider in your main() to
// export them:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithBatcher(exporter),
//	)
//	otel.SetTracerProvider(tp)
func OpenTelemetry(opts ...OTelOption) Middleware {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Resolve tracer from global provider
	config.tracer = otel.Tracer(config.TracerName)

	return MiddlewareFunc(func(next propwatch.Notifier) propwatch.Notifier {
		return propwatch.NotifierFunc(func() {
			// A filtered notification still forwards; only the span is
			// skipped.
			if config.Filter != nil && !config.Filter() {
				next.Notify()
				return
			}

			_, span := config.tracer.Start(
				context.Background(),
				config.SpanName,
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(config.Attributes...),
				trace.WithTimestamp(time.Now()),
			)
			defer span.End()

			next.Notify()
		})
	})
}
