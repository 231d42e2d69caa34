package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore is a file-based implementation of driven.SettingsStore
// using TOML. Settings live in a single config.toml inside the aoc config
// directory. The session token is stored with restricted permissions.
type SettingsStore struct {
	mu       sync.RWMutex
	filePath string
}

// NewSettingsStore creates a TOML-based settings store.
// If configDir is empty, defaults to the aoc directory under the user
// config dir (~/.config/aoc on Linux).
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(base, "aoc")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &SettingsStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// Load reads settings from the TOML file.
// A missing file is not an error; defaults are returned instead.
func (s *SettingsStore) Load() (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file yet - that's fine, start with defaults
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, err
	}

	settings := domain.DefaultSettings()
	if err := toml.Unmarshal(data, &settings); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

// Save persists the given settings to the TOML file.
func (s *SettingsStore) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(settings)
	if err != nil {
		return err
	}

	// Write with restricted permissions; the file holds the session token
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the configuration file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}
