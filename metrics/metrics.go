// Package metrics exposes Prometheus collectors for advice outcomes and
// HTTP traffic on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "advocate"

// Metrics holds the collectors of the service
type Metrics struct {
	registry        *prometheus.Registry
	adviceTotal     *prometheus.CounterVec
	issueMatches    *prometheus.CounterVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates and registers all collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		adviceTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advice_total",
			Help:      "Advice responses by status and classifier pass.",
		}, []string{"status", "source"}),
		issueMatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "issue_matches_total",
			Help:      "Issues identified in advice responses.",
		}, []string{"issue"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.adviceTotal,
		m.issueMatches,
		m.requestsTotal,
		m.requestDuration,
	)
	return m
}

// ObserveAdvice records one advice response
func (m *Metrics) ObserveAdvice(status, source string, issues []string) {
	if m == nil {
		return
	}
	m.adviceTotal.WithLabelValues(status, source).Inc()
	for _, issue := range issues {
		m.issueMatches.WithLabelValues(issue).Inc()
	}
}

// ObserveRequest records one HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
