// Package metrics exposes the Prometheus counters of the rating pipeline and
// the HTTP API on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"shiprates/internal/core/domain/model/quote"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shiprates"

// Metrics holds the service collectors. It implements rating.Recorder.
type Metrics struct {
	registry *prometheus.Registry

	ProviderOutcomes    *prometheus.CounterVec
	QuotesServedTotal   *prometheus.CounterVec
	QuotesReturned      *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with Go and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.ProviderOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_outcomes_total",
			Help:      "Rate provider calls by provider and pipeline outcome",
		},
		[]string{"provider", "outcome"},
	)

	m.QuotesServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_sets_served_total",
			Help:      "Quote sets returned by the aggregator by source",
		},
		[]string{"source", "unfiltered"},
	)

	m.QuotesReturned = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quotes_per_response",
			Help:      "Number of quotes in a served set",
			Buckets:   []float64{0, 1, 2, 3, 4, 6, 8, 12, 20},
		},
		[]string{"source"},
	)

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	registry.MustRegister(
		m.ProviderOutcomes,
		m.QuotesServedTotal,
		m.QuotesReturned,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ProviderOutcome counts one provider call.
func (m *Metrics) ProviderOutcome(provider, outcome string) {
	m.ProviderOutcomes.WithLabelValues(provider, outcome).Inc()
}

// QuotesServed counts one served quote set.
func (m *Metrics) QuotesServed(source quote.Source, unfiltered bool, count int) {
	m.QuotesServedTotal.WithLabelValues(source.String(), strconv.FormatBool(unfiltered)).Inc()
	m.QuotesReturned.WithLabelValues(source.String()).Observe(float64(count))
}

// RecordHTTPRequest records an HTTP request. path is the route template, not the raw URL.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
