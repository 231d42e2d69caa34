// Package file provides the file-based implementation of the settings
// store port. Settings persist as TOML in the aoc config directory.
package file
