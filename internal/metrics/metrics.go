// Package metrics exposes Prometheus instrumentation for the generation
// pipeline and the HTTP API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ericfisherdev/creatortools/internal/domain/model"
)

const namespace = "creatortools"

// Metrics holds the collectors registered for one process.
type Metrics struct {
	Generations      *prometheus.CounterVec
	GenerationTime   *prometheus.HistogramVec
	ProviderFailures *prometheus.CounterVec
	HTTPRequests     *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Completed generations by tool kind and provenance.",
		}, []string{"tool_kind", "provenance"}),
		GenerationTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Time to produce a generation result, provider call included.",
			Buckets:   []float64{0.005, 0.05, 0.25, 1, 2.5, 5, 10, 30},
		}, []string{"tool_kind", "provenance"}),
		ProviderFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_failures_total",
			Help:      "Provider calls that failed and fell back to the local generator.",
		}, []string{"tool_kind", "error_kind"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP API requests by method and status code.",
		}, []string{"method", "code"}),
	}
	reg.MustRegister(m.Generations, m.GenerationTime, m.ProviderFailures, m.HTTPRequests)
	return m
}

// ObserveGeneration implements application.GenerationRecorder.
func (m *Metrics) ObserveGeneration(kind model.ToolKind, provenance model.Provenance, elapsed time.Duration) {
	m.Generations.WithLabelValues(string(kind), string(provenance)).Inc()
	m.GenerationTime.WithLabelValues(string(kind), string(provenance)).Observe(elapsed.Seconds())
}

// ObserveProviderFailure implements application.GenerationRecorder.
func (m *Metrics) ObserveProviderFailure(kind model.ToolKind, errorKind model.ErrorKind) {
	m.ProviderFailures.WithLabelValues(string(kind), string(errorKind)).Inc()
}

// ObserveHTTPRequest counts one served request.
func (m *Metrics) ObserveHTTPRequest(method string, status int) {
	m.HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}
