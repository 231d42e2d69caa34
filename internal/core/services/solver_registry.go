package services

import (
	"fmt"

	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/ports/driving"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day01"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day02"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day03"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day04"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day05"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day06"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day07"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day08"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day09"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day10"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day11"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day12"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day13"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day14"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day15"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day16"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day17"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day18"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day19"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day20"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day21"
	"github.com/Gisleburt/advent-of-code-2023/internal/solvers/day22"
)

// Ensure SolverRegistry implements the interface.
var _ driving.SolverRegistry = (*SolverRegistry)(nil)

// solverKey addresses one part of one day.
type solverKey struct {
	day  int
	part int
}

// SolverRegistry maps (day, part) pairs to solver functions.
// The catalogue is fixed at construction and never mutated by runs, so
// lookups are safe from any goroutine.
type SolverRegistry struct {
	solvers map[solverKey]domain.SolverFunc
}

// NewSolverRegistry creates a registry with all built-in solvers registered.
func NewSolverRegistry() *SolverRegistry {
	r := &SolverRegistry{
		solvers: make(map[solverKey]domain.SolverFunc),
	}
	r.registerBuiltinSolvers()
	return r
}

// registerBuiltinSolvers wires up every solved day.
func (r *SolverRegistry) registerBuiltinSolvers() {
	r.register(1, day01.Part1, day01.Part2)
	r.register(2, day02.Part1, day02.Part2)
	r.register(3, day03.Part1, day03.Part2)
	r.register(4, day04.Part1, day04.Part2)
	r.register(5, day05.Part1, day05.Part2)
	r.register(6, day06.Part1, day06.Part2)
	r.register(7, day07.Part1, day07.Part2)
	r.register(8, day08.Part1, day08.Part2)
	r.register(9, day09.Part1, day09.Part2)
	r.register(10, day10.Part1, day10.Part2)
	r.register(11, day11.Part1, day11.Part2)
	r.register(12, day12.Part1, day12.Part2)
	r.register(13, day13.Part1, day13.Part2)
	r.register(14, day14.Part1, day14.Part2)
	r.register(15, day15.Part1, day15.Part2)
	r.register(16, day16.Part1, day16.Part2)
	r.register(17, day17.Part1, day17.Part2)
	r.register(18, day18.Part1, day18.Part2)
	r.register(19, day19.Part1, day19.Part2)
	r.register(20, day20.Part1, day20.Part2)
	r.register(21, day21.Part1, day21.Part2)
	r.register(22, day22.Part1, day22.Part2)
}

// register adds the solvers for one day. A nil part is skipped so a day
// can be registered before its second part is solved.
func (r *SolverRegistry) register(day int, part1, part2 domain.SolverFunc) {
	if part1 != nil {
		r.solvers[solverKey{day: day, part: 1}] = part1
	}
	if part2 != nil {
		r.solvers[solverKey{day: day, part: 2}] = part2
	}
}

// Lookup returns the solver for a day and part.
// Returns domain.ErrNotImplemented when none is registered.
func (r *SolverRegistry) Lookup(day, part int) (domain.SolverFunc, error) {
	solver, ok := r.solvers[solverKey{day: day, part: part}]
	if !ok {
		return nil, fmt.Errorf("day %d part %d: %w", day, part, domain.ErrNotImplemented)
	}
	return solver, nil
}

// Has reports whether a solver is registered for a day and part.
func (r *SolverRegistry) Has(day, part int) bool {
	_, ok := r.solvers[solverKey{day: day, part: part}]
	return ok
}

// Days summarises solver coverage in ascending day order.
// Days with no solvers at all are omitted.
func (r *SolverRegistry) Days() []domain.DaySummary {
	var summaries []domain.DaySummary
	for day := domain.MinDay; day <= domain.MaxDay; day++ {
		var parts []int
		for part := 1; part <= 2; part++ {
			if r.Has(day, part) {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			summaries = append(summaries, domain.DaySummary{Day: day, Parts: parts})
		}
	}
	return summaries
}
