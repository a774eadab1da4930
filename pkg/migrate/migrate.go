package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/angelmondragon/wishlist-backend/pkg/config"
	"github.com/pressly/goose/v3"
)

const DefaultDir = "pkg/migrate/migrations"

// dialectDirs names the per-driver subdirectories kept in lockstep.
var dialectDirs = []string{config.DriverSQLite, config.DriverPostgres}

//go:embed migrations
var embedded embed.FS

// FS returns the embedded migration tree for a driver.
func FS(driver string) (fs.FS, error) {
	name, err := normalizeDriver(driver)
	if err != nil {
		return nil, err
	}
	return fs.Sub(embedded, "migrations/"+name)
}

// NewProvider builds a goose provider over the embedded migrations for the driver.
func NewProvider(db *sql.DB, driver string) (*goose.Provider, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	dialect, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	fsys, err := FS(driver)
	if err != nil {
		return nil, err
	}
	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	return provider, nil
}

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB, driver string) error {
	provider, err := NewProvider(db, driver)
	if err != nil {
		return err
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Run executes a goose command that requires a DB connection and reports
// progress to out.
func Run(ctx context.Context, db *sql.DB, driver string, command string, out io.Writer) error {
	provider, err := NewProvider(db, driver)
	if err != nil {
		return err
	}
	if out == nil {
		out = io.Discard
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		for _, res := range results {
			fmt.Fprintf(out, "OK   %s (%s)\n", res.Source.Path, res.Duration)
		}
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		if len(results) == 0 {
			fmt.Fprintln(out, "no migrations to run")
		}
	case "down":
		res, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		if res != nil {
			fmt.Fprintf(out, "OK   %s (%s)\n", res.Source.Path, res.Duration)
		}
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, st := range statuses {
			applied := "Pending"
			if !st.AppliedAt.IsZero() {
				applied = st.AppliedAt.UTC().Format("2006-01-02 15:04:05")
			}
			fmt.Fprintf(out, "%-22s %s\n", applied, st.Source.Path)
		}
	case "version":
		version, err := provider.GetDBVersion(ctx)
		if err != nil {
			return fmt.Errorf("goose version: %w", err)
		}
		fmt.Fprintf(out, "version %d\n", version)
	default:
		return fmt.Errorf("unknown goose command %q", command)
	}
	return nil
}

// MigrateToVersion migrates up/down to the requested version by comparing current DB version.
func MigrateToVersion(ctx context.Context, db *sql.DB, driver string, targetVersion string) error {
	if targetVersion == "" {
		return fmt.Errorf("targetVersion is required")
	}

	target, err := strconv.ParseInt(targetVersion, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid version %q (expected YYYYMMDDHHMMSS): %w", targetVersion, err)
	}

	provider, err := NewProvider(db, driver)
	if err != nil {
		return err
	}

	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("get db version: %w", err)
	}

	switch {
	case current == target:
		return nil

	case current < target:
		if _, err := provider.UpTo(ctx, target); err != nil {
			return fmt.Errorf("goose up-to %d: %w", target, err)
		}
		return nil

	default:
		if _, err := provider.DownTo(ctx, target); err != nil {
			return fmt.Errorf("goose down-to %d: %w", target, err)
		}
		return nil
	}
}

func normalizeDriver(driver string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(driver))
	switch name {
	case config.DriverSQLite, config.DriverPostgres:
		return name, nil
	}
	return "", fmt.Errorf("no migrations for driver %q", driver)
}

func dialectFor(driver string) (goose.Dialect, error) {
	name, err := normalizeDriver(driver)
	if err != nil {
		return "", err
	}
	if name == config.DriverSQLite {
		return goose.DialectSQLite3, nil
	}
	return goose.DialectPostgres, nil
}
