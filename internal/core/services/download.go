package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/ports/driven"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/ports/driving"
	"github.com/Gisleburt/advent-of-code-2023/internal/logger"
)

// Ensure InputDownloader implements the interface.
var _ driving.InputDownloader = (*InputDownloader)(nil)

// InputDownloader fetches puzzle inputs from the site and stores them
// under the configured inputs directory.
type InputDownloader struct {
	settings driving.SettingsService
	fetcher  driven.InputFetcher
	store    driven.InputStore
}

// NewInputDownloader creates a downloader wired to the given settings,
// fetcher, and input store.
func NewInputDownloader(
	settings driving.SettingsService,
	fetcher driven.InputFetcher,
	store driven.InputStore,
) *InputDownloader {
	return &InputDownloader{
		settings: settings,
		fetcher:  fetcher,
		store:    store,
	}
}

// Download fetches the input for a day and writes it to the conventional
// per-day location, returning the path written. An existing file
// short-circuits the download unless force is set.
func (d *InputDownloader) Download(ctx context.Context, day int, force bool) (string, error) {
	if day < domain.MinDay || day > domain.MaxDay {
		return "", fmt.Errorf(
			"%w: day %d must be between %d and %d",
			domain.ErrInvalidArgument, day, domain.MinDay, domain.MaxDay,
		)
	}

	settings, err := d.settings.Get()
	if err != nil {
		return "", err
	}
	if !settings.HasSession() {
		return "", domain.ErrNoSession
	}

	path := filepath.Join(settings.InputsDir, fmt.Sprintf("d%02d.txt", day))
	if !force && d.store.Exists(path) {
		logger.Debug("input for day %d already at %s, skipping download", day, path)
		return path, nil
	}

	logger.Info("downloading %d day %d input", settings.Year, day)
	input, err := d.fetcher.FetchInput(ctx, settings.Session, settings.Year, day)
	if err != nil {
		return "", err
	}

	if err := d.store.Save(path, input); err != nil {
		return "", fmt.Errorf("store input: %w", err)
	}
	logger.Debug("wrote %d bytes to %s", len(input), path)

	return path, nil
}
