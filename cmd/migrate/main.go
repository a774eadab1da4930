package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/angelmondragon/wishlist-backend/pkg/config"
	"github.com/angelmondragon/wishlist-backend/pkg/db"
	"github.com/angelmondragon/wishlist-backend/pkg/logger"
	"github.com/angelmondragon/wishlist-backend/pkg/migrate"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dir string
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the wishlist_items schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dir, "dir", migrate.DefaultDir, "migrations base directory, one subdirectory per dialect (create, validate)")

	for _, name := range []string{"up", "down", "status"} {
		root.AddCommand(&cobra.Command{
			Use:   name,
			Short: "goose " + name + " against the configured database",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), cmd.Name(), func(ctx context.Context, client *db.Client) error {
					sqlDB, err := client.SQL()
					if err != nil {
						return err
					}
					return migrate.Run(ctx, sqlDB, client.Driver(), cmd.Name(), cmd.OutOrStdout())
				})
			},
		})
	}

	root.AddCommand(&cobra.Command{
		Use:   "version [TARGET]",
		Short: "Print the current version, or migrate up or down to TARGET (YYYYMMDDHHMMSS)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(cmd.Context(), "version", func(ctx context.Context, client *db.Client) error {
				sqlDB, err := client.SQL()
				if err != nil {
					return err
				}
				if len(args) == 0 {
					return migrate.Run(ctx, sqlDB, client.Driver(), "version", cmd.OutOrStdout())
				}
				return migrate.MigrateToVersion(ctx, sqlDB, client.Driver(), args[0])
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "create NAME",
		Short: "Write an empty migration into every dialect directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := migrate.CreateSQLMigrations(dir, args[0], time.Now())
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), "created migration:", path)
			}
			return err
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check that every dialect directory has the same well-formed versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := migrate.ValidateDir(dir); err != nil {
				return fmt.Errorf("migration validation failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migration validation passed")
			return nil
		},
	})

	return root
}

// withDatabase loads config and opens the database for one goose command.
func withDatabase(ctx context.Context, command string, fn func(context.Context, *db.Client) error) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logg := logger.FromApp("migrate", cfg.App, os.Stderr, nil)
	ctx = logg.WithFields(ctx, map[string]any{"cmd": command, "driver": cfg.DB.Driver})

	client, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "database unavailable", err)
		return err
	}
	defer func() {
		err = multierr.Append(err, client.Close())
	}()

	if err := fn(ctx, client); err != nil {
		logg.Error(ctx, "goose "+command+" failed", err)
		return err
	}
	logg.Info(ctx, "goose "+command+" completed")
	return nil
}
