package domain

import "errors"

// Domain errors represent puzzle-run failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidArgument indicates a malformed puzzle request, such as a day
	// outside the calendar or a part other than 1 or 2.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotImplemented indicates no solver is registered for the requested
	// day and part.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInputNotFound indicates the puzzle input file does not exist.
	ErrInputNotFound = errors.New("input not found")

	// ErrInputUnreadable indicates the puzzle input file exists but could
	// not be read.
	ErrInputUnreadable = errors.New("input unreadable")

	// ErrSolverFailure indicates a solver rejected its input or panicked
	// while computing an answer.
	ErrSolverFailure = errors.New("solver failure")

	// Session Errors.

	// ErrNoSession indicates no Advent of Code session token is configured.
	// Input downloads are disabled until one is saved.
	ErrNoSession = errors.New("no session token configured")

	// ErrSessionInvalid indicates the configured session token was rejected
	// by the puzzle site.
	ErrSessionInvalid = errors.New("session token invalid")

	// ErrPuzzleUnavailable indicates the puzzle site has no input for the
	// requested day, usually because it has not unlocked yet.
	ErrPuzzleUnavailable = errors.New("puzzle input unavailable")
)
