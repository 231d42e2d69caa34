package driving

import (
	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
)

// SolverRegistry exposes the catalogue of registered solvers.
type SolverRegistry interface {
	// Lookup returns the solver for a day and part.
	// Returns domain.ErrNotImplemented when none is registered.
	Lookup(day, part int) (domain.SolverFunc, error)

	// Has reports whether a solver is registered for a day and part.
	Has(day, part int) bool

	// Days summarises solver coverage in ascending day order.
	Days() []domain.DaySummary
}
