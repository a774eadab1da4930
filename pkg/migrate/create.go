package migrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/angelmondragon/wishlist-backend/pkg/config"
)

const versionLayout = "20060102150405"

var (
	unsafeNameChars = regexp.MustCompile(`[^a-z0-9]+`)

	// dialectHints open each new file so authors remember the column types
	// the two schemas use for the same wishlist fields.
	dialectHints = map[string]string{
		config.DriverSQLite:   "-- sqlite: INTEGER PRIMARY KEY AUTOINCREMENT ids, REAL epoch seconds, NUMERIC(12,2) prices",
		config.DriverPostgres: "-- postgres: BIGSERIAL ids, DOUBLE PRECISION epoch seconds, NUMERIC(12,2) prices",
	}
)

// CreateSQLMigrations writes one empty migration with the same version into
// every dialect directory under baseDir, keeping the schemas in lockstep:
//
//	<baseDir>/<dialect>/<YYYYMMDDHHMMSS>_<name>.sql
//
// Nothing is written when any target file already exists.
func CreateSQLMigrations(baseDir, name string, now time.Time) ([]string, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, errors.New("dir is required")
	}
	slug := strings.Trim(unsafeNameChars.ReplaceAllString(strings.ToLower(name), "_"), "_")
	if slug == "" {
		return nil, fmt.Errorf("migration name %q has no usable characters", name)
	}
	filename := now.UTC().Format(versionLayout) + "_" + slug + ".sql"

	targets := make([]string, 0, len(dialectDirs))
	for _, dialect := range dialectDirs {
		target := filepath.Join(baseDir, dialect, filename)
		if _, err := os.Stat(target); err == nil {
			return nil, fmt.Errorf("migration already exists: %s", target)
		}
		targets = append(targets, target)
	}

	written := make([]string, 0, len(targets))
	for i, target := range targets {
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, fmt.Errorf("mkdir %q: %w", filepath.Dir(target), err)
		}
		if err := os.WriteFile(target, []byte(migrationTemplate(dialectDirs[i], slug)), 0o644); err != nil {
			return written, fmt.Errorf("write migration %q: %w", target, err)
		}
		written = append(written, target)
	}
	return written, nil
}

func migrationTemplate(dialect, slug string) string {
	return fmt.Sprintf(`%s
-- +goose Up
-- +goose StatementBegin
-- %s
-- +goose StatementEnd

-- +goose Down
-- +goose StatementBegin
-- rollback %s
-- +goose StatementEnd
`, dialectHints[dialect], slug, slug)
}
