package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iansan5653/propwatch/pkg/propwatch"
)

// MetricsConfig configures the Prometheus notification metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "propwatch").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for sink execution time.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus notification metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "propwatch",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors for notification traffic. One
// Metrics instance registers its collectors once; derive per-sink
// middleware from it with Instrument.
type Metrics struct {
	notificationsTotal *prometheus.CounterVec
	notifyDuration     *prometheus.HistogramVec
}

// NewMetrics registers the notification collectors and returns the
// instance. Registering twice against the same registry panics, as usual
// for promauto.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		notificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "notifications_total",
			Help:        "Total number of notifications delivered, by sink",
			ConstLabels: config.ConstLabels,
		}, []string{"sink"}),

		notifyDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "notify_duration_seconds",
			Help:        "Downstream sink execution time in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"sink"}),
	}
}

// Instrument returns middleware that counts notifications and times the
// downstream sink under the given sink label. The label is fixed at wrap
// time: notifications carry no payload to label by, and per-entity labels
// would explode cardinality.
func (m *Metrics) Instrument(sink string) Middleware {
	return MiddlewareFunc(func(next propwatch.Notifier) propwatch.Notifier {
		counter := m.notificationsTotal.WithLabelValues(sink)
		duration := m.notifyDuration.WithLabelValues(sink)

		return propwatch.NotifierFunc(func() {
			counter.Inc()

			start := time.Now()
			next.Notify()
			duration.Observe(time.Since(start).Seconds())
		})
	})
}
