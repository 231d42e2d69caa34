package domain

// SolverFunc computes the answer for one part of one day's puzzle.
// It receives the raw input text exactly as read from disk and returns the
// answer rendered as a string. Parsing failures are reported as errors
// rather than panics, though the runner tolerates both.
type SolverFunc func(input string) (string, error)

// DaySummary describes the solver coverage for a single day.
type DaySummary struct {
	// Day is the puzzle day.
	Day int

	// Parts lists the parts with a registered solver, in ascending order.
	Parts []int
}
