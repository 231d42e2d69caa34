// Command aoc runs Advent of Code 2023 solutions.
//
// This is the composition root: driven adapters are constructed first,
// core services are wired on top of them, and the result is injected
// into the cobra command tree before it executes.
package main

import (
	"fmt"
	"os"

	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driven/aocsite"
	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driven/config/file"
	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driven/input"
	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driven/storage/memory"
	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driving/cli"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/ports/driven"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/services"
)

func main() {
	// Driven adapters.
	var settingsStore driven.SettingsStore
	if fileStore, err := file.NewSettingsStore(""); err == nil {
		settingsStore = fileStore
	} else {
		// Still usable without a config directory; the session token
		// just won't survive this invocation.
		fmt.Fprintf(os.Stderr, "Warning: config directory unavailable (%v), settings will not persist\n", err)
		settingsStore = memory.NewSettingsStore()
	}
	inputs := input.NewStore()
	site := aocsite.NewClient()

	// Core services.
	registry := services.NewSolverRegistry()
	runner := services.NewPuzzleRunner(registry, inputs)
	settings := services.NewSettingsService(settingsStore)
	downloader := services.NewInputDownloader(settings, site, inputs)

	// Driving adapters.
	cli.SetRunner(runner)
	cli.SetSolverRegistry(registry)
	cli.SetSettingsService(settings)
	cli.SetInputDownloader(downloader)
	cli.SetTUIConfig(&cli.TUIConfig{
		Runner:     runner,
		Registry:   registry,
		Settings:   settings,
		Downloader: downloader,
	})

	if err := cli.Execute(); err != nil {
		// Cobra has already written the error to stderr.
		os.Exit(1)
	}
}
