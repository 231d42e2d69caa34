// Package domain defines the core entities for the puzzle runner.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - PuzzleRequest: A validated (day, part, input path) triple
//   - SolverFunc: The contract every per-day solver implements
//   - RunResult: The answer and timing for a completed run
//   - Settings: Persisted session and download configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
