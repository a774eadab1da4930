package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/wishlist-backend/api/controllers"
	"github.com/angelmondragon/wishlist-backend/api/middleware"
	"github.com/angelmondragon/wishlist-backend/internal/wishlist"
	"github.com/angelmondragon/wishlist-backend/pkg/config"
	"github.com/angelmondragon/wishlist-backend/pkg/db"
	"github.com/angelmondragon/wishlist-backend/pkg/logger"
	"github.com/angelmondragon/wishlist-backend/pkg/metrics"
	"github.com/angelmondragon/wishlist-backend/pkg/redis"
)

// NewRouter wires the wishlist API. redisClient and metricsHandler may be nil.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	wishlistService wishlist.Service,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
) http.Handler {
	var (
		replayStore redis.ReplayStore
		redisPinger redis.Pinger
	)
	if redisClient != nil {
		replayStore = redisClient
		redisPinger = redisClient
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.CORS(cfg.App.CORSOrigins),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Get("/", controllers.Root())

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisPinger))
	})

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	idempotency := middleware.Idempotency(replayStore, cfg.Wishlist.IdempotencyTTL, logg)

	r.Route("/api/wishlist", func(r chi.Router) {
		r.Get("/", controllers.WishlistList(wishlistService, logg))
		r.With(idempotency).Post("/", controllers.WishlistAddItem(wishlistService, logg))
		r.Get("/view", controllers.WishlistView(wishlistService, logg))
		r.Get("/categories", controllers.WishlistCategories(wishlistService, logg))
		r.Patch("/{id}", controllers.WishlistUpdateCategory(wishlistService, logg))
		r.Put("/{id}", controllers.WishlistUpdateCategory(wishlistService, logg))
	})

	return r
}
