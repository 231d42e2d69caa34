package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/ports/driven"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/ports/driving"
	"github.com/Gisleburt/advent-of-code-2023/internal/logger"
)

// Ensure PuzzleRunner implements the interface.
var _ driving.PuzzleRunner = (*PuzzleRunner)(nil)

// PuzzleRunner dispatches puzzle requests to registered solvers.
// It is stateless between runs; each Run call resolves everything it
// needs from the request alone.
type PuzzleRunner struct {
	registry driving.SolverRegistry
	inputs   driven.InputSource
}

// NewPuzzleRunner creates a runner backed by the given registry and
// input source.
func NewPuzzleRunner(registry driving.SolverRegistry, inputs driven.InputSource) *PuzzleRunner {
	return &PuzzleRunner{
		registry: registry,
		inputs:   inputs,
	}
}

// Run looks up the solver for the request, loads the input, and computes
// the answer. The registry lookup happens before any file access, so an
// unimplemented day fails the same way whether or not its input exists.
func (r *PuzzleRunner) Run(ctx context.Context, req domain.PuzzleRequest) (*domain.RunResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	logger.Debug("run %s: dispatching %s", runID, req)

	solver, err := r.registry.Lookup(req.Day, req.Part)
	if err != nil {
		return nil, err
	}

	path := req.ResolvedInputPath()
	input, err := r.inputs.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("run %s: loaded %d bytes from %s", runID, len(input), path)

	start := time.Now()
	answer, err := r.solve(solver, req, input)
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}
	logger.Debug("run %s: solved in %s", runID, elapsed)

	return &domain.RunResult{
		Day:       req.Day,
		Part:      req.Part,
		Answer:    answer,
		InputPath: path,
		Duration:  elapsed,
	}, nil
}

// solve invokes the solver with panic recovery so a misbehaving day is
// reported as a solver failure instead of crashing the process.
func (r *PuzzleRunner) solve(
	solver domain.SolverFunc,
	req domain.PuzzleRequest,
	input string,
) (answer string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s panicked: %v", domain.ErrSolverFailure, req, rec)
		}
	}()

	answer, err = solver(input)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrSolverFailure, req, err)
	}
	return answer, nil
}
