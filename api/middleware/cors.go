package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

var defaultCORSOrigins = []string{"*"}

// CORS admits the configured origins, all of them when none are given. The
// browser extension posts from a chrome-extension:// origin, which can be
// listed as "chrome-extension://*".
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = defaultCORSOrigins
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", idempotencyHeader, requestIDHeader, "X-Requested-With"},
		ExposedHeaders: []string{requestIDHeader, replayedHeader},
		MaxAge:         300,
	}).Handler
}
