package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/wishlist-backend/api/responses"
	"github.com/angelmondragon/wishlist-backend/pkg/config"
	"github.com/angelmondragon/wishlist-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/wishlist-backend/pkg/errors"
	"github.com/angelmondragon/wishlist-backend/pkg/logger"
	"github.com/angelmondragon/wishlist-backend/pkg/redis"
)

const (
	envHeader        = "X-Wishlist-Env"
	readinessTimeout = 2 * time.Second
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteJSON(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the database and, when configured, Redis.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := map[string]string{}
		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database not ready"))
				return
			}
			checks["database"] = "ok"
		}
		if redisP != nil {
			if err := redisP.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis not ready"))
				return
			}
			checks["redis"] = "ok"
		}

		responses.WriteJSON(w, map[string]any{"status": "ready", "checks": checks})
	}
}
