// Package middleware provides instrumentation wrappers for propwatch
// notification sinks.
//
// A Middleware wraps a Notifier and returns a Notifier, so instrumentation
// composes the way the sinks themselves do. Every middleware in this
// package forwards exactly one downstream notification per upstream
// notification; wrapping never batches, drops, or reorders.
//
// # Prometheus Metrics
//
// Metrics counts notifications and times the downstream sink:
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	sink := middleware.Chain(redraw, m.Instrument("canvas"))
//
// Exposed series:
//   - propwatch_notifications_total{sink}: notifications delivered per sink
//   - propwatch_notify_duration_seconds{sink}: downstream execution time
//
// # OpenTelemetry Tracing
//
// OpenTelemetry opens a span around each notification:
//
//	sink := middleware.Chain(redraw,
//	    middleware.OpenTelemetry(middleware.WithTracerName("my-app")),
//	)
//
// The tracer comes from the global tracer provider. Without an SDK
// installed the spans are no-ops; configure a provider in main() to export
// them:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
//
// # Logging
//
// Logging writes a debug line per notification through a *slog.Logger:
//
//	sink := middleware.Chain(redraw, middleware.Logging(logger, "canvas"))
package middleware
