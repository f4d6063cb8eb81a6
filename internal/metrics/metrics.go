package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the collectors exported on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	Requests       *prometheus.CounterVec
	Duration       *prometheus.HistogramVec
	ResolverErrors *prometheus.CounterVec
}

// New creates the collectors on a private registry, along with Go runtime and process metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests served, by route, method and status code.",
		}, []string{"path", "method", "code"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
		ResolverErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "graphql_resolver_errors_total",
			Help: "GraphQL resolver failures by field.",
		}, []string{"field"}),
	}
	m.registry.MustRegister(
		m.Requests,
		m.Duration,
		m.ResolverErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ResolverError counts a failed resolver. Safe on a nil receiver.
func (m *Metrics) ResolverError(field string) {
	if m == nil {
		return
	}
	m.ResolverErrors.WithLabelValues(field).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
