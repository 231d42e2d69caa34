// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - InputSource: Loads puzzle input text for a run
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SettingsStore: Session/config persistence. Without it, downloads and
//     login are disabled but local runs still work.
//   - InputFetcher: Downloads inputs from the puzzle site. Only used by the
//     fetch command.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or solver package
package driven
