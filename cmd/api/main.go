package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"

	"github.com/angelmondragon/wishlist-backend/api/routes"
	"github.com/angelmondragon/wishlist-backend/internal/wishlist"
	"github.com/angelmondragon/wishlist-backend/pkg/config"
	"github.com/angelmondragon/wishlist-backend/pkg/db"
	"github.com/angelmondragon/wishlist-backend/pkg/instance"
	"github.com/angelmondragon/wishlist-backend/pkg/logger"
	"github.com/angelmondragon/wishlist-backend/pkg/metrics"
	"github.com/angelmondragon/wishlist-backend/pkg/migrate"
	"github.com/angelmondragon/wishlist-backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.FromApp("api", cfg.App, nil, map[string]any{"instance": instance.GetID()})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRun(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run migrations", err)
		_ = dbClient.Close()
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap redis", err)
			_ = dbClient.Close()
			os.Exit(1)
		}
	} else {
		logg.Info(ctx, "redis not configured, idempotent submissions disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	wishlistService, err := wishlist.NewService(wishlist.ServiceParams{
		Store:           wishlist.NewRepository(dbClient.DB()),
		KnownCategories: cfg.Wishlist.KnownCategories,
		Metrics:         metrics.NewWishlistMetrics(registry),
	})
	if err != nil {
		logg.Error(ctx, "failed to create wishlist service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	srvCtx := logg.WithFields(ctx, map[string]any{
		"addr":   addr,
		"driver": dbClient.Driver(),
	})
	logg.Info(srvCtx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			wishlistService,
			metrics.NewHTTPMetrics(registry),
			promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	exitCode := 0
	select {
	case err := <-serveErr:
		if err != nil {
			logg.Error(srvCtx, "api server stopped unexpectedly", err)
			exitCode = 1
		}
	case <-ctx.Done():
		logg.Info(srvCtx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	closeErr := server.Shutdown(shutdownCtx)
	closeErr = multierr.Append(closeErr, redisClient.Close())
	closeErr = multierr.Append(closeErr, dbClient.Close())
	if closeErr != nil {
		logg.Error(srvCtx, "error during shutdown", closeErr)
		exitCode = 1
	}

	logg.Info(srvCtx, "api server stopped")
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
