package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	assert.Empty(t, settings.Session)
	assert.Equal(t, 2023, settings.Year)
	assert.Equal(t, "inputs", settings.InputsDir)
}

func TestSettings_HasSession(t *testing.T) {
	assert.False(t, Settings{}.HasSession())
	assert.False(t, DefaultSettings().HasSession())
	assert.True(t, Settings{Session: "53616c7465645f5f"}.HasSession())
}

func TestSettings_InputPathFor(t *testing.T) {
	assert.Equal(t, filepath.Join("puzzles", "d03.txt"), Settings{InputsDir: "puzzles"}.InputPathFor(3))
	assert.Equal(t, filepath.Join("inputs", "d03.txt"), Settings{}.InputPathFor(3), "empty dir falls back to the default")
}
