package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
)

// stubRegistry serves solvers from a fixed map and counts lookups.
type stubRegistry struct {
	solvers map[[2]int]domain.SolverFunc
	lookups int
}

func (s *stubRegistry) Lookup(day, part int) (domain.SolverFunc, error) {
	s.lookups++
	solver, ok := s.solvers[[2]int{day, part}]
	if !ok {
		return nil, fmt.Errorf("day %d part %d: %w", day, part, domain.ErrNotImplemented)
	}
	return solver, nil
}

func (s *stubRegistry) Has(day, part int) bool {
	_, ok := s.solvers[[2]int{day, part}]
	return ok
}

func (s *stubRegistry) Days() []domain.DaySummary {
	return nil
}

// stubInputSource records every requested path.
type stubInputSource struct {
	text  string
	err   error
	loads []string
}

func (s *stubInputSource) Load(path string) (string, error) {
	s.loads = append(s.loads, path)
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func echoSolver(input string) (string, error) {
	return input, nil
}

func TestPuzzleRunner_Run(t *testing.T) {
	registry := &stubRegistry{solvers: map[[2]int]domain.SolverFunc{{7, 1}: echoSolver}}
	inputs := &stubInputSource{text: "puzzle text"}
	runner := NewPuzzleRunner(registry, inputs)

	result, err := runner.Run(context.Background(), domain.PuzzleRequest{Day: 7, Part: 1})

	require.NoError(t, err)
	assert.Equal(t, 7, result.Day)
	assert.Equal(t, 1, result.Part)
	assert.Equal(t, "puzzle text", result.Answer)
	assert.Equal(t, filepath.Join("inputs", "d07.txt"), result.InputPath)
	assert.Equal(t, []string{filepath.Join("inputs", "d07.txt")}, inputs.loads)
}

func TestPuzzleRunner_Run_ExplicitInputPath(t *testing.T) {
	registry := &stubRegistry{solvers: map[[2]int]domain.SolverFunc{{7, 2}: echoSolver}}
	inputs := &stubInputSource{text: "override"}
	runner := NewPuzzleRunner(registry, inputs)

	result, err := runner.Run(context.Background(), domain.PuzzleRequest{Day: 7, Part: 2, InputPath: "fixtures/sample.txt"})

	require.NoError(t, err)
	assert.Equal(t, "fixtures/sample.txt", result.InputPath)
	assert.Equal(t, []string{"fixtures/sample.txt"}, inputs.loads)
}

func TestPuzzleRunner_Run_UnimplementedDayReadsNoInput(t *testing.T) {
	inputs := &stubInputSource{text: "should never be read"}
	runner := NewPuzzleRunner(NewSolverRegistry(), inputs)

	_, err := runner.Run(context.Background(), domain.PuzzleRequest{Day: 99, Part: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.Empty(t, inputs.loads, "the registry is consulted before any input file is touched")
}

func TestPuzzleRunner_Run_InputError(t *testing.T) {
	registry := &stubRegistry{solvers: map[[2]int]domain.SolverFunc{{3, 1}: echoSolver}}
	inputs := &stubInputSource{err: fmt.Errorf("%w: inputs/d03.txt", domain.ErrInputNotFound)}
	runner := NewPuzzleRunner(registry, inputs)

	_, err := runner.Run(context.Background(), domain.PuzzleRequest{Day: 3, Part: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInputNotFound)
}

func TestPuzzleRunner_Run_SolverError(t *testing.T) {
	failing := func(string) (string, error) {
		return "", errors.New("malformed almanac")
	}
	registry := &stubRegistry{solvers: map[[2]int]domain.SolverFunc{{5, 1}: failing}}
	runner := NewPuzzleRunner(registry, &stubInputSource{text: "x"})

	_, err := runner.Run(context.Background(), domain.PuzzleRequest{Day: 5, Part: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSolverFailure)
	assert.Contains(t, err.Error(), "malformed almanac")
}

func TestPuzzleRunner_Run_SolverPanic(t *testing.T) {
	panicking := func(string) (string, error) {
		panic("index out of range")
	}
	registry := &stubRegistry{solvers: map[[2]int]domain.SolverFunc{{5, 2}: panicking}}
	runner := NewPuzzleRunner(registry, &stubInputSource{text: "x"})

	_, err := runner.Run(context.Background(), domain.PuzzleRequest{Day: 5, Part: 2})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSolverFailure)
	assert.Contains(t, err.Error(), "panicked")
}

func TestPuzzleRunner_Run_CancelledContext(t *testing.T) {
	registry := &stubRegistry{solvers: map[[2]int]domain.SolverFunc{{1, 1}: echoSolver}}
	runner := NewPuzzleRunner(registry, &stubInputSource{text: "x"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, domain.PuzzleRequest{Day: 1, Part: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, registry.lookups)
}

func TestPuzzleRunner_Run_ReportsDuration(t *testing.T) {
	registry := &stubRegistry{solvers: map[[2]int]domain.SolverFunc{{2, 1}: echoSolver}}
	runner := NewPuzzleRunner(registry, &stubInputSource{text: "x"})

	result, err := runner.Run(context.Background(), domain.PuzzleRequest{Day: 2, Part: 1})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Duration.Nanoseconds(), int64(0))
}
