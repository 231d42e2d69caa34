// Package services implements the driving port interfaces.
// Services contain the core run orchestration and delegate
// input loading and persistence to driven ports (adapters).
//
// Services are pure Go with no external dependencies beyond logging.
package services
