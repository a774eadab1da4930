package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/wishlist-backend/pkg/config"
	"github.com/angelmondragon/wishlist-backend/pkg/db"
	"github.com/angelmondragon/wishlist-backend/pkg/logger"
)

// MaybeRun applies pending migrations at startup when auto-migrate is enabled,
// so a fresh wishlist.db is usable without running cmd/migrate first.
func MaybeRun(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.Wishlist.AutoMigrate {
		return nil
	}

	sqlDB, err := client.SQL()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	if logg != nil {
		ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "driver": client.Driver()})
		logg.Info(ctx, "running goose migrations (auto-run)")
	}

	if err := Up(ctx, sqlDB, client.Driver()); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "goose migrations completed")
	}
	return nil
}
