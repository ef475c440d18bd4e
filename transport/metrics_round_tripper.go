/*
Copyright © 2025 CraftMarket Development Team.

Released under MIT license.
*/

package transport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector is an interface for collecting metrics for outgoing requests
// and for the throttling that precedes them.
type MetricsCollector interface {
	// RequestDuration observes the duration of a finished request attempt.
	RequestDuration(method, status string, startTime time.Time)

	// ThrottleStall observes a single advised stall before a request of the given class.
	ThrottleStall(class string, stall time.Duration)

	// RateLimitHit counts a 429 rejection of the given class.
	RateLimitHit(class string)
}

// PrometheusMetricsCollector is a Prometheus metrics collector.
type PrometheusMetricsCollector struct {
	// Durations is a histogram of request durations.
	Durations *prometheus.HistogramVec

	// Stalls is a histogram of stalls advised by the throttle.
	Stalls *prometheus.HistogramVec

	// RateLimitHits is a counter of 429 rejections.
	RateLimitHits *prometheus.CounterVec
}

// NewPrometheusMetricsCollector creates a new Prometheus metrics collector.
func NewPrometheusMetricsCollector(namespace string) *PrometheusMetricsCollector {
	return &PrometheusMetricsCollector{
		Durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_client_request_duration_seconds",
			Help:      "A histogram of the API client request durations.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"method", "status"}),
		Stalls: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_client_throttle_stall_seconds",
			Help:      "A histogram of stalls advised by the request throttle.",
			Buckets:   []float64{0.01, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		}, []string{"class"}),
		RateLimitHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_client_rate_limit_hits_total",
			Help:      "A total number of 429 responses received from the API.",
		}, []string{"class"}),
	}
}

// MustRegister registers the Prometheus metrics.
func (p *PrometheusMetricsCollector) MustRegister() {
	prometheus.MustRegister(p.Durations, p.Stalls, p.RateLimitHits)
}

// Unregister the Prometheus metrics.
func (p *PrometheusMetricsCollector) Unregister() {
	prometheus.Unregister(p.Durations)
	prometheus.Unregister(p.Stalls)
	prometheus.Unregister(p.RateLimitHits)
}

// RequestDuration observes the duration of a finished request attempt.
func (p *PrometheusMetricsCollector) RequestDuration(method, status string, start time.Time) {
	p.Durations.WithLabelValues(method, status).Observe(time.Since(start).Seconds())
}

// ThrottleStall observes a single advised stall before a request of the given class.
func (p *PrometheusMetricsCollector) ThrottleStall(class string, stall time.Duration) {
	p.Stalls.WithLabelValues(class).Observe(stall.Seconds())
}

// RateLimitHit counts a 429 rejection of the given class.
func (p *PrometheusMetricsCollector) RateLimitHit(class string) {
	p.RateLimitHits.WithLabelValues(class).Inc()
}

// MetricsRoundTripper is an HTTP transport that measures requests done.
type MetricsRoundTripper struct {
	// Delegate is the next RoundTripper in the chain.
	Delegate http.RoundTripper

	// Collector is a metrics collector.
	Collector MetricsCollector
}

// NewMetricsRoundTripper creates an HTTP transport that measures requests done.
func NewMetricsRoundTripper(delegate http.RoundTripper, collector MetricsCollector) *MetricsRoundTripper {
	return &MetricsRoundTripper{Delegate: delegate, Collector: collector}
}

// RoundTrip measures external requests done.
func (rt *MetricsRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	if rt.Collector == nil {
		return rt.Delegate.RoundTrip(r)
	}
	start := time.Now()
	resp, err := rt.Delegate.RoundTrip(r)
	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	rt.Collector.RequestDuration(r.Method, status, start)
	return resp, err
}
