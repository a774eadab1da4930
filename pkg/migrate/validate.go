package migrate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

var (
	sqlFileRe = regexp.MustCompile(`^(\d{14})_[a-z0-9_]+\.sql$`)
)

// ValidateDir validates every dialect directory under baseDir and checks the
// dialects carry the same migration versions.
func ValidateDir(baseDir string) error {
	if baseDir == "" {
		return fmt.Errorf("dir is required")
	}
	return validateDialects(func(dialect string) (fs.FS, string) {
		dir := filepath.Join(baseDir, dialect)
		return os.DirFS(dir), dir
	})
}

// ValidateEmbedded runs the same checks against the migrations compiled into the binary.
func ValidateEmbedded() error {
	return validateDialects(func(dialect string) (fs.FS, string) {
		fsys, err := FS(dialect)
		if err != nil {
			return nil, dialect
		}
		return fsys, "embedded:" + dialect
	})
}

func validateDialects(open func(dialect string) (fs.FS, string)) error {
	var reference []string
	var referenceName string
	for _, dialect := range dialectDirs {
		fsys, name := open(dialect)
		if fsys == nil {
			return fmt.Errorf("open migrations %q", name)
		}
		versions, err := ValidateFS(fsys, name)
		if err != nil {
			return err
		}
		if reference == nil {
			reference, referenceName = versions, name
			continue
		}
		if !slices.Equal(reference, versions) {
			return fmt.Errorf("migration versions differ between %q %v and %q %v", referenceName, reference, name, versions)
		}
	}
	return nil
}

// ValidateFS validates migration filenames and goose headers, returning the
// sorted versions found.
func ValidateFS(fsys fs.FS, name string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read dir %q: %w", name, err)
	}

	seen := map[string]string{} // version -> filename
	versions := []string{}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		file := e.Name()
		if !strings.HasSuffix(file, ".sql") {
			continue
		}

		m := sqlFileRe.FindStringSubmatch(file)
		if m == nil {
			return nil, fmt.Errorf("invalid migration filename %q (expected YYYYMMDDHHMMSS_name.sql)", file)
		}

		version := m[1]
		if prev, ok := seen[version]; ok {
			return nil, fmt.Errorf("duplicate migration version %s in %q and %q", version, prev, file)
		}
		seen[version] = file
		versions = append(versions, version)

		b, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("read file %q: %w", file, err)
		}

		txt := string(b)
		if !strings.Contains(txt, "-- +goose Up") {
			return nil, fmt.Errorf("migration %q missing \"-- +goose Up\"", file)
		}
		if !strings.Contains(txt, "-- +goose Down") {
			return nil, fmt.Errorf("migration %q missing \"-- +goose Down\"", file)
		}
	}

	slices.Sort(versions)
	return versions, nil
}
