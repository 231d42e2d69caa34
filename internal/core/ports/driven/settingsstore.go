package driven

import (
	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
)

// SettingsStore persists application settings across invocations.
type SettingsStore interface {
	// Load reads persisted settings.
	// Returns defaults when nothing has been saved yet.
	Load() (domain.Settings, error)

	// Save persists the given settings, replacing what was stored.
	Save(settings domain.Settings) error

	// Path returns the location settings are persisted to, for display.
	Path() string
}
