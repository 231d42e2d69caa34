// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewPicker is the implemented-day selection list.
	ViewPicker ViewType = iota
	// ViewResult shows answers and timings for the chosen day.
	ViewResult
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewPicker:
		return "picker"
	case ViewResult:
		return "result"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// RunRequested asks for one or more parts of a day to be run.
type RunRequested struct {
	Day   int
	Parts []int
}

// RunCompleted carries a single part's outcome back to the model.
type RunCompleted struct {
	Day    int
	Part   int
	Result *domain.RunResult
	Err    error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
