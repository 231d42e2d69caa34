// Package input provides the filesystem implementation of the input ports.
// Puzzle inputs are plain text files, conventionally one per day under an
// inputs directory.
package input

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.InputStore = (*Store)(nil)

// Store reads and writes puzzle inputs on the local filesystem.
type Store struct{}

// NewStore creates a filesystem input store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the input at path and returns its text unmodified.
// Trailing newlines are preserved; solvers trim what they need to.
func (s *Store) Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", domain.ErrInputNotFound, path)
		}
		return "", fmt.Errorf("%w: %s: %v", domain.ErrInputUnreadable, path, err)
	}
	return string(data), nil
}

// Exists reports whether an input file is present at path.
func (s *Store) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Save writes input text to path, creating parent directories as needed.
func (s *Store) Save(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create input directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("write input file: %w", err)
	}
	return nil
}
