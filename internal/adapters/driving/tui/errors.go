package tui

import "errors"

// ErrMissingRunner is returned when the puzzle runner is not provided.
var ErrMissingRunner = errors.New("tui: puzzle runner is required")

// ErrMissingRegistry is returned when the solver registry is not provided.
var ErrMissingRegistry = errors.New("tui: solver registry is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
