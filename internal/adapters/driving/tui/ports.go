// Package tui provides an interactive terminal user interface for aoc.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/Gisleburt/advent-of-code-2023/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Runner executes puzzle requests.
	Runner driving.PuzzleRunner

	// Registry lists the implemented days.
	Registry driving.SolverRegistry

	// Settings manages application settings. Optional.
	Settings driving.SettingsService

	// Downloader fetches puzzle inputs. Optional.
	Downloader driving.InputDownloader
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(runner driving.PuzzleRunner, registry driving.SolverRegistry) *Ports {
	return &Ports{
		Runner:   runner,
		Registry: registry,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Runner == nil {
		return ErrMissingRunner
	}
	if p.Registry == nil {
		return ErrMissingRegistry
	}
	return nil
}
