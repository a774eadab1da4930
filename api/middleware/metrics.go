package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/wishlist-backend/pkg/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics observes every request once routing has resolved the chi pattern.
func Metrics(m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()
			next.ServeHTTP(rec, r)
			if rec.status == 0 {
				rec.status = http.StatusOK
			}
			m.Observe(r.Method, routeLabel(r), rec.status, time.Since(start))
		})
	}
}

// routeLabel keeps label cardinality bounded by never falling back to the raw path.
func routeLabel(r *http.Request) string {
	if ctx := chi.RouteContext(r.Context()); ctx != nil {
		if pattern := ctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return unmatchedRoute
}
