package dashboard

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/angelmondragon/wishlist-backend/internal/wishlist"
)

// DefaultStateFile holds the last view selection between dashboard runs.
const DefaultStateFile = ".wishlist-dashboard.yaml"

// LoadState reads a saved view state. A missing file yields the default state.
func LoadState(path string) (wishlist.ViewState, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return wishlist.DefaultViewState(), nil
	}
	if err != nil {
		return wishlist.ViewState{}, fmt.Errorf("read view state: %w", err)
	}

	var state wishlist.ViewState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return wishlist.ViewState{}, fmt.Errorf("parse view state %s: %w", path, err)
	}
	return state.Normalize(), nil
}

// SaveState writes the normalized state, creating parent directories as needed.
func SaveState(path string, state wishlist.ViewState) error {
	data, err := yaml.Marshal(state.Normalize())
	if err != nil {
		return fmt.Errorf("encode view state: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write view state: %w", err)
	}
	return nil
}
