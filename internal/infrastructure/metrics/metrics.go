// Package metrics exposes Prometheus instrumentation for the gateway:
// upstream call outcomes and latency, mock fallbacks and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream call outcomes.
const (
	OutcomeSuccess       = "success"
	OutcomeEmpty         = "empty"
	OutcomeValidation    = "validation"
	OutcomeUnavailable   = "unavailable"
	OutcomeNotConfigured = "not_configured"
)

// Recorder records gateway metrics against a registry.
type Recorder struct {
	gatherer prometheus.Gatherer

	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	fallbacks        *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New registers the gateway collectors with reg.
func New(reg *prometheus.Registry) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		gatherer: reg,
		upstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_upstream_requests_total",
			Help: "The total number of upstream aggregator calls by operation and outcome",
		}, []string{"operation", "outcome"}),
		upstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gateway_upstream_duration_seconds",
			Help:    "Time taken by upstream aggregator calls",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"operation"}),
		fallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_fallbacks_total",
			Help: "The total number of results substituted by local fallback data",
		}, []string{"operation", "reason"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_http_requests_total",
			Help: "The total number of HTTP requests served",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gateway_http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Nop returns a Recorder bound to a private registry.
func Nop() *Recorder {
	return New(prometheus.NewRegistry())
}

// ObserveUpstream records one upstream call.
func (r *Recorder) ObserveUpstream(operation, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.upstreamRequests.WithLabelValues(operation, outcome).Inc()
	r.upstreamDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncFallback records a fallback substitution.
func (r *Recorder) IncFallback(operation, reason string) {
	if r == nil {
		return
	}
	r.fallbacks.WithLabelValues(operation, reason).Inc()
}

// ObserveHTTP records one served HTTP request.
func (r *Recorder) ObserveHTTP(method, route string, status int, d time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}

// UpstreamRequests exposes the upstream counter for assertions.
func (r *Recorder) UpstreamRequests() *prometheus.CounterVec {
	return r.upstreamRequests
}

// Fallbacks exposes the fallback counter for assertions.
func (r *Recorder) Fallbacks() *prometheus.CounterVec {
	return r.fallbacks
}

// HTTPRequests exposes the HTTP request counter for assertions.
func (r *Recorder) HTTPRequests() *prometheus.CounterVec {
	return r.httpRequests
}
