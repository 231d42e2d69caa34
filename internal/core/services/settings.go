package services

import (
	"fmt"
	"strings"

	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/ports/driven"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages persisted application settings.
type SettingsService struct {
	store driven.SettingsStore
}

// NewSettingsService creates a settings service over the given store.
func NewSettingsService(store driven.SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the current settings with defaults applied.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings, err := s.store.Load()
	if err != nil {
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	if settings.Year == 0 {
		settings.Year = domain.DefaultYear
	}
	if settings.InputsDir == "" {
		settings.InputsDir = domain.DefaultInputsDir
	}
	return settings, nil
}

// SetSession stores the adventofcode.com session token.
// A "session=" prefix is stripped so the cookie header value can be
// pasted as-is.
func (s *SettingsService) SetSession(token string) error {
	token = strings.TrimSpace(token)
	token = strings.TrimPrefix(token, "session=")
	if token == "" {
		return fmt.Errorf("%w: empty session token", domain.ErrInvalidArgument)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Session = token

	if err := s.store.Save(settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ClearSession removes any stored session token.
func (s *SettingsService) ClearSession() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Session = ""

	if err := s.store.Save(settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Path returns where settings are persisted, for display.
func (s *SettingsService) Path() string {
	return s.store.Path()
}
