package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics records request metadata for the API surface.
type HTTPMetrics struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
	errors   *prometheus.CounterVec
}

// NewHTTPMetrics registers the request metrics on the provided registerer.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		return &HTTPMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of handled HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Handled HTTP requests by status code.",
	}, []string{"route", "method", "status"})
	errors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_request_errors_total",
		Help: "Requests that ended in a 5xx response.",
	}, []string{"route", "method"})
	reg.MustRegister(duration, requests, errors)
	return &HTTPMetrics{
		duration: duration,
		requests: requests,
		errors:   errors,
	}
}

// ObserveRequest records one handled request.
func (h *HTTPMetrics) ObserveRequest(route, method, status string, duration time.Duration) {
	if h == nil || h.duration == nil {
		return
	}
	route = normalizeLabel(route)
	method = normalizeLabel(method)
	h.duration.WithLabelValues(route, method).Observe(duration.Seconds())
	h.requests.WithLabelValues(route, method, normalizeLabel(status)).Inc()
}

// IncError increments the server error counter for the route.
func (h *HTTPMetrics) IncError(route, method string) {
	if h == nil || h.errors == nil {
		return
	}
	h.errors.WithLabelValues(normalizeLabel(route), normalizeLabel(method)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
