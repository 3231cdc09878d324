package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bestshop/storefront-backend/pkg/metrics"
)

// Metrics records per-route request counts, durations, and server errors.
// The route label is the chi pattern, not the raw path, so labels stay
// low-cardinality.
func Metrics(m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(rec, r)

			if rec.status == 0 {
				rec.status = http.StatusOK
			}

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			m.ObserveRequest(route, r.Method, strconv.Itoa(rec.status), time.Since(start))
			if rec.status >= http.StatusInternalServerError {
				m.IncError(route, r.Method)
			}
		})
	}
}
