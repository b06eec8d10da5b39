// Package observability exposes gateway metrics through Prometheus.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/DanielPopoola/card-payment-gateway/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors for the payment pipeline and the HTTP boundary.
type Metrics struct {
	registry *prometheus.Registry

	decisions        *prometheus.CounterVec
	bankCalls        *prometheus.CounterVec
	bankCallDuration *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// NewMetrics registers the gateway collectors on a fresh registry, so several
// instances can coexist in tests.
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_decisions_total",
			Help:      "Payment requests processed, by final status.",
		}, []string{"status"}),
		bankCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bank_requests_total",
			Help:      "Authorization calls to the acquiring bank, by outcome and failure kind.",
		}, []string{"outcome", "failure"}),
		bankCallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bank_request_duration_seconds",
			Help:      "Latency of authorization calls to the acquiring bank.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method, route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		m.decisions,
		m.bankCalls,
		m.bankCallDuration,
		m.httpRequests,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveDecision(status domain.PaymentStatus) {
	m.decisions.WithLabelValues(string(status)).Inc()
}

func (m *Metrics) ObserveBankCall(result domain.AuthorizationResult, elapsed time.Duration) {
	m.bankCalls.WithLabelValues(string(result.Outcome), string(result.Failure)).Inc()
	m.bankCallDuration.WithLabelValues(string(result.Outcome)).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveHTTPRequest(method, route string, code int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
