package driving

import (
	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
)

// SettingsService manages persisted application settings.
type SettingsService interface {
	// Get returns the current settings with defaults applied.
	Get() (domain.Settings, error)

	// SetSession stores the adventofcode.com session token.
	SetSession(token string) error

	// ClearSession removes any stored session token.
	ClearSession() error

	// Path returns where settings are persisted, for display.
	Path() string
}
