package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/wishlist-backend/api/responses"
	pkgerrors "github.com/angelmondragon/wishlist-backend/pkg/errors"
	"github.com/angelmondragon/wishlist-backend/pkg/logger"
	pkgredis "github.com/angelmondragon/wishlist-backend/pkg/redis"
)

const (
	idempotencyHeader     = "Idempotency-Key"
	replayedHeader        = "Idempotent-Replayed"
	defaultIdempotencyTTL = 24 * time.Hour
	maxIdempotencyKeyLen  = 255

	// Matches the JSON body limit enforced by the handlers.
	maxIdempotentBodyBytes = 64 << 10
)

// Idempotency replays the first response recorded for a repeated
// Idempotency-Key, so a double submit from the browser extension creates one
// item. Mount it per route; requests without the header, safe methods and
// every request when store is nil pass through. A non-positive ttl uses 24h.
func Idempotency(store pkgredis.ReplayStore, ttl time.Duration, logg *logger.Logger) func(http.Handler) http.Handler {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimSpace(r.Header.Get(idempotencyHeader))
			if store == nil || key == "" || !mutating(r.Method) {
				next.ServeHTTP(w, r)
				return
			}
			ctx := r.Context()
			if len(key) > maxIdempotencyKeyLen {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Idempotency-Key header too long"))
				return
			}

			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxIdempotentBodyBytes))
			if err != nil {
				var sizeErr *http.MaxBytesError
				if errors.As(err, &sizeErr) {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "request body too large"))
					return
				}
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read request"))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			scope := replayScope(r)
			fingerprint := hashBody(body)

			prior, err := store.LookupReplay(ctx, scope, key)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check idempotency"))
				return
			}
			if prior != nil {
				if prior.RequestHash != fingerprint {
					responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeIdempotency, "idempotency key reused with different request body"))
					return
				}
				replay(w, prior)
				return
			}

			capture := &responseCapture{ResponseWriter: w}
			next.ServeHTTP(capture, r)

			status := capture.statusOrOK()
			if status >= http.StatusInternalServerError {
				return
			}
			record := pkgredis.ReplayRecord{
				Status:      status,
				ContentType: capture.Header().Get("Content-Type"),
				Body:        capture.body.Bytes(),
				RequestHash: fingerprint,
			}
			if _, err := store.SaveReplay(ctx, scope, key, record, ttl); err != nil {
				logError(ctx, logg, "persist idempotency record", err)
			}
		})
	}
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// replayScope keys records by method and route pattern so one client key
// cannot collide across endpoints.
func replayScope(r *http.Request) string {
	path := r.URL.Path
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if pattern := rc.RoutePattern(); pattern != "" {
			path = pattern
		}
	}
	return r.Method + "|" + strings.TrimSuffix(path, "/")
}

func replay(w http.ResponseWriter, record *pkgredis.ReplayRecord) {
	if record.ContentType != "" {
		w.Header().Set("Content-Type", record.ContentType)
	}
	w.Header().Set(replayedHeader, "true")
	w.WriteHeader(record.Status)
	_, _ = w.Write(record.Body)
}

func hashBody(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

type responseCapture struct {
	http.ResponseWriter
	body   bytes.Buffer
	status int
}

func (r *responseCapture) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseCapture) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseCapture) statusOrOK() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

func logError(ctx context.Context, logg *logger.Logger, msg string, err error) {
	if logg == nil || err == nil {
		return
	}
	logg.Error(ctx, msg, err)
}
