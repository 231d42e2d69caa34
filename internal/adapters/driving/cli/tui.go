package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driving/tui"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/ports/driving"
)

// TUIConfig holds the services the TUI command needs.
type TUIConfig struct {
	Runner     driving.PuzzleRunner
	Registry   driving.SolverRegistry
	Settings   driving.SettingsService
	Downloader driving.InputDownloader
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Pick an implemented day from the list and run its parts without retyping
flags. Answers and timings are shown in place.

Controls:
  ↑/k, ↓/j - Navigate days
  1 / 2    - Run part 1 / part 2
  Enter    - Run both parts
  Esc      - Back
  q        - Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery so a rendering bug leaves a stack trace instead of
	// a corrupted terminal and nothing else.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{}
	if tuiConfig != nil {
		ports.Runner = tuiConfig.Runner
		ports.Registry = tuiConfig.Registry
		ports.Settings = tuiConfig.Settings
		ports.Downloader = tuiConfig.Downloader
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
