package domain

import "time"

// RunResult captures the outcome of a successful puzzle run.
type RunResult struct {
	// Day is the puzzle day that was solved.
	Day int

	// Part is the puzzle part that was solved.
	Part int

	// Answer is the solver's answer rendered as a string.
	Answer string

	// InputPath is the file the input text was read from.
	InputPath string

	// Duration is how long the solver itself ran, excluding input loading.
	Duration time.Duration
}
