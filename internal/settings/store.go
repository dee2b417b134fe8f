package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/omnicalc/backend/internal/logging"
	"github.com/omnicalc/backend/internal/navigation"
)

// Store persists the selected view mode between sessions. Only the
// serialization id is written; the enum value never leaves the process.
type Store struct {
	path   string
	logger *logging.Logger
}

type settingsFile struct {
	SelectedMode *int `toml:"selected_mode,omitempty"`
}

// NewStore creates a settings store backed by a TOML file at path.
func NewStore(path string, logger *logging.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.WithComponent("settings"),
	}
}

// Load reads the stored selection. A missing or unreadable file is not an
// error; it simply means nothing is stored.
func (s *Store) Load() navigation.StoredSelection {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read settings file", zap.Error(err))
		}
		return navigation.NoStoredSelection()
	}

	var file settingsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		s.logger.Warn("malformed settings file, ignoring stored selection", zap.Error(err))
		return navigation.NoStoredSelection()
	}
	if file.SelectedMode == nil {
		return navigation.NoStoredSelection()
	}
	return navigation.StoredID(*file.SelectedMode)
}

// Save persists the given mode's serialization id. Modes absent from the
// manifest are rejected; nothing is written for them.
func (s *Store) Save(manifest *navigation.Manifest, mode navigation.ViewMode) error {
	id := manifest.Serialize(mode)
	if id == -1 {
		return fmt.Errorf("mode %s is not in the manifest", mode)
	}

	data, err := toml.Marshal(settingsFile{SelectedMode: &id})
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	// Write-then-rename so a crash mid-write never corrupts the file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace settings: %w", err)
	}

	s.logger.Debug("selection saved", zap.String("mode", mode.String()), zap.Int("id", id))
	return nil
}
