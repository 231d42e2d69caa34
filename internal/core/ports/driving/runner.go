package driving

import (
	"context"

	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
)

// PuzzleRunner executes puzzle requests.
type PuzzleRunner interface {
	// Run dispatches a request to its registered solver and returns the
	// answer together with timing information.
	//
	// The solver lookup happens before any input is read, so a request
	// for an unimplemented day fails with domain.ErrNotImplemented even
	// when its input file is missing.
	Run(ctx context.Context, req domain.PuzzleRequest) (*domain.RunResult, error)
}
