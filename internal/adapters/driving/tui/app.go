package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driving/tui/messages"
	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driving/tui/styles"
	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driving/tui/views/picker"
	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driving/tui/views/result"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// pickerView is the day selection list.
	pickerView *picker.View

	// resultView shows answers and timings for the chosen day.
	resultView *result.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	pickerView := picker.NewView(s, ports.Registry)
	resultView := result.NewView(s, nil, ports.Runner)
	if ports.Settings != nil {
		resultView = resultView.WithSettings(ports.Settings)
	}

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		pickerView:  pickerView,
		resultView:  resultView,
		currentView: messages.ViewPicker, // Start with the day list
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.resultView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("aoc - Advent of Code 2023"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.pickerView.SetDimensions(msg.Width, msg.Height)
		a.resultView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewPicker:
			if msg.String() == "?" {
				a.currentView = messages.ViewHelp
				return a, nil
			}
			a.pickerView, cmd = a.pickerView.Update(msg)
			return a, cmd

		case messages.ViewResult:
			// Esc from the result view goes back to the picker
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewPicker
				return a, nil
			}
			if msg.String() == "q" {
				return a, tea.Quit
			}
			a.resultView, cmd = a.resultView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Any of esc/q/? leaves help
			switch msg.String() {
			case "esc", "q", "?":
				a.currentView = messages.ViewPicker
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.RunRequested:
		a.currentView = messages.ViewResult
		return a, a.resultView.Run(msg.Day, msg.Parts)

	case messages.RunCompleted:
		a.err = msg.Err
		a.resultView, cmd = a.resultView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view
	switch a.currentView {
	case messages.ViewPicker:
		a.pickerView, cmd = a.pickerView.Update(msg)
	case messages.ViewResult:
		a.resultView, cmd = a.resultView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewPicker:
		return a.pickerView.View()
	case messages.ViewResult:
		return a.resultView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.pickerView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Day list:
  j/k, ↑/↓    Navigate days
  enter       Run both parts
  1 / 2       Run a single part
  q           Quit

Results:
  1 / 2       Re-run a part
  esc         Back to the day list
  q           Quit

Anywhere:
  ctrl+c      Quit
  ?           Toggle help

[esc] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.pickerView.SetDimensions(width, height)
	a.resultView.SetDimensions(width, height)
}
