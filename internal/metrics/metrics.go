// Package metrics exposes Prometheus instrumentation for the formatting
// pipeline: values formatted per representation mode, formatting errors,
// batch durations and HTTP endpoint activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Representation mode labels used by RecordValue.
const (
	ModeGrouped     = "grouped"
	ModeShortform   = "shortform"
	ModeExponential = "exponential"
	ModeNonFinite   = "non_finite"
)

// Metrics holds the Prometheus collectors for one application instance.
// Each instance carries its own registry, so constructing several Metrics
// values (as tests do) never trips duplicate registration.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	valuesTotal    *prometheus.CounterVec
	errorsTotal    prometheus.Counter
	batchDuration  prometheus.Histogram
	requestsTotal  prometheus.Counter
	activeRequests prometheus.Gauge
}

// NewMetrics creates a Metrics instance with all collectors registered on a
// fresh registry, alongside the standard Go runtime collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		valuesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "readnum_values_formatted_total",
			Help: "Number of values formatted, by representation mode.",
		}, []string{"mode"}),
		errorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "readnum_format_errors_total",
			Help: "Number of values that could not be formatted.",
		}),
		batchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "readnum_batch_duration_seconds",
			Help:    "Wall-clock duration of batch formatting runs.",
			Buckets: prometheus.DefBuckets,
		}),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "readnum_requests_total",
			Help: "Total HTTP requests served.",
		}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "readnum_active_requests",
			Help: "HTTP requests currently in flight.",
		}),
	}

	registry.MustRegister(
		m.valuesTotal,
		m.errorsTotal,
		m.batchDuration,
		m.requestsTotal,
		m.activeRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// RecordValue counts one formatted value under the given mode label.
func (m *Metrics) RecordValue(mode string) {
	m.valuesTotal.WithLabelValues(mode).Inc()
}

// RecordError counts one formatting failure.
func (m *Metrics) RecordError() {
	m.errorsTotal.Inc()
}

// ObserveBatchDuration records the duration of one batch run in seconds.
func (m *Metrics) ObserveBatchDuration(seconds float64) {
	m.batchDuration.Observe(seconds)
}

// IncrementActiveRequests increments the in-flight request gauge and the
// total request counter.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
	m.requestsTotal.Inc()
}

// DecrementActiveRequests decrements the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
