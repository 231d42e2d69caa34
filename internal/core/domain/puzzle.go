package domain

import (
	"fmt"
	"path/filepath"
)

// Calendar bounds for a single Advent of Code event.
const (
	// MinDay is the first puzzle day in December.
	MinDay = 1

	// MaxDay is the last puzzle day in December.
	MaxDay = 25
)

// PuzzleRequest identifies a single puzzle run.
// Each request addresses one part of one day's puzzle, with an optional
// override for where the input text is read from.
type PuzzleRequest struct {
	// Day is the puzzle day, 1 through 25.
	Day int

	// Part is the puzzle part, 1 or 2.
	Part int

	// InputPath overrides the default input file location.
	// Empty means derive the path from the day number.
	InputPath string
}

// NewPuzzleRequest builds a validated request.
// Day must fall within the calendar and part must be 1 or 2; anything else
// is rejected before any solver or file is touched.
func NewPuzzleRequest(day, part int, inputPath string) (PuzzleRequest, error) {
	if day < MinDay || day > MaxDay {
		return PuzzleRequest{}, fmt.Errorf("%w: day %d must be between %d and %d", ErrInvalidArgument, day, MinDay, MaxDay)
	}
	if part != 1 && part != 2 {
		return PuzzleRequest{}, fmt.Errorf("%w: part %d must be 1 or 2", ErrInvalidArgument, part)
	}
	return PuzzleRequest{Day: day, Part: part, InputPath: inputPath}, nil
}

// ResolvedInputPath returns the input file location for this request.
// An explicit path wins; otherwise the conventional per-day path is used.
func (r PuzzleRequest) ResolvedInputPath() string {
	if r.InputPath != "" {
		return r.InputPath
	}
	return DefaultInputPath(r.Day)
}

// DefaultInputPath returns the conventional input location for a day,
// a zero-padded file under the default inputs directory.
func DefaultInputPath(day int) string {
	return InputPathIn(DefaultInputsDir, day)
}

// InputPathIn returns the conventional zero-padded input location for a
// day under the given directory (e.g. inputs/d07.txt).
func InputPathIn(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("d%02d.txt", day))
}

// String renders the request for log lines and error messages.
func (r PuzzleRequest) String() string {
	return fmt.Sprintf("day %d part %d", r.Day, r.Part)
}
