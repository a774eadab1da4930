package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/angelmondragon/wishlist-backend/pkg/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

// Logging emits request.complete for every request: Warn for 4xx, Info
// otherwise. Health and metrics probes are logged at Debug only.
func Logging(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if logg == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logg.WithFields(r.Context(), map[string]any{
				"method": r.Method,
				"path":   r.URL.Path,
			})
			logg.Debug(ctx, "request.start")

			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()
			next.ServeHTTP(rec, r.WithContext(ctx))
			if rec.status == 0 {
				rec.status = http.StatusOK
			}

			ctx = logg.WithFields(ctx, map[string]any{
				"route":       routeLabel(r),
				"status":      rec.status,
				"duration_ms": time.Since(start).Milliseconds(),
			})
			switch {
			case isProbe(r.URL.Path):
				logg.Debug(ctx, "request.complete")
			case rec.status >= http.StatusBadRequest && rec.status < http.StatusInternalServerError:
				logg.Warn(ctx, "request.complete")
			default:
				logg.Info(ctx, "request.complete")
			}
		})
	}
}

func isProbe(path string) bool {
	return path == "/metrics" || strings.HasPrefix(path, "/health/")
}
