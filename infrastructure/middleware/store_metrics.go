// Package middleware provides cross-cutting concerns for the hackathon
// store, currently Prometheus-backed metrics collection.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hackdash/hackdash/internal/ports"
)

var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus. It tracks reducer dispatches, persistence failures, and
// operation latency for the store.
type PrometheusMetrics struct {
	dispatches          *prometheus.CounterVec
	persistenceFailures *prometheus.CounterVec
	operationLatency    *prometheus.HistogramVec
}

// NewPrometheusMetrics creates a PrometheusMetrics instance registered in
// the default Prometheus registry.
func NewPrometheusMetrics() *PrometheusMetrics {
	return NewPrometheusMetricsWith(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWith creates a PrometheusMetrics instance registered
// against the given registerer. Tests pass a private registry to avoid
// duplicate-registration panics.
func NewPrometheusMetricsWith(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		dispatches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hackdash_store_dispatches_total",
				Help: "Total number of actions dispatched to the store.",
			},
			[]string{"action", "status"},
		),
		persistenceFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hackdash_store_persistence_failures_total",
				Help: "Total number of failed persistence operations.",
			},
			[]string{"operation"},
		),
		operationLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hackdash_store_operation_duration_seconds",
				Help:    "Execution time of store operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordDispatch implements the MetricsCollector interface by incrementing
// the dispatch counter for the given action and status.
func (pm *PrometheusMetrics) RecordDispatch(action, status string) {
	pm.dispatches.WithLabelValues(action, status).Inc()
}

// RecordPersistenceFailure implements the MetricsCollector interface by
// counting a failed persistence operation.
func (pm *PrometheusMetrics) RecordPersistenceFailure(operation string) {
	pm.persistenceFailures.WithLabelValues(operation).Inc()
}

// RecordLatency implements the MetricsCollector interface by recording
// operation latency in a Prometheus histogram.
func (pm *PrometheusMetrics) RecordLatency(operation string, d time.Duration) {
	pm.operationLatency.WithLabelValues(operation).Observe(d.Seconds())
}
