// Package solvers holds one package per solved puzzle day.
//
// Every day package exposes the same two functions:
//
//	func Part1(input string) (string, error)
//	func Part2(input string) (string, error)
//
// taking the raw input text and returning the answer as a string.
// The services.SolverRegistry wires these into the dispatch table; the
// day packages themselves never touch files, flags, or each other.
//
// Shared parsing and arithmetic helpers live in the parse and intmath
// subpackages.
package solvers
