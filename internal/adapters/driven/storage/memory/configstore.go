package memory

import (
	"sync"

	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore is an in-memory implementation of driven.SettingsStore,
// used in tests and as a fallback when no config directory is available.
type SettingsStore struct {
	mu       sync.RWMutex
	settings domain.Settings
	saved    bool
}

// NewSettingsStore creates a new in-memory settings store.
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{}
}

// Load returns the stored settings, or defaults if nothing was saved.
func (s *SettingsStore) Load() (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.saved {
		return domain.DefaultSettings(), nil
	}
	return s.settings, nil
}

// Save stores the given settings.
func (s *SettingsStore) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings
	s.saved = true
	return nil
}

// Path returns the configuration file path.
func (s *SettingsStore) Path() string {
	return ":memory:"
}
