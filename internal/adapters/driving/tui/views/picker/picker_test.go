package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driving/tui/messages"
	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driving/tui/styles"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
)

// MockSolverRegistry implements driving.SolverRegistry for testing.
type MockSolverRegistry struct {
	days []domain.DaySummary
}

func (m *MockSolverRegistry) Lookup(day, part int) (domain.SolverFunc, error) {
	if m.Has(day, part) {
		return func(string) (string, error) { return "42", nil }, nil
	}
	return nil, domain.ErrNotImplemented
}

func (m *MockSolverRegistry) Has(day, part int) bool {
	for _, d := range m.days {
		if d.Day != day {
			continue
		}
		for _, p := range d.Parts {
			if p == part {
				return true
			}
		}
	}
	return false
}

func (m *MockSolverRegistry) Days() []domain.DaySummary {
	return m.days
}

func testRegistry() *MockSolverRegistry {
	return &MockSolverRegistry{
		days: []domain.DaySummary{
			{Day: 1, Parts: []int{1, 2}},
			{Day: 2, Parts: []int{1}},
			{Day: 5, Parts: []int{1, 2}},
		},
	}
}

func TestNewView(t *testing.T) {
	s := styles.DefaultStyles()
	registry := testRegistry()

	view := NewView(s, registry)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.Len(t, view.Days(), 3)
	assert.Equal(t, 0, view.Selected())
	assert.Equal(t, 80, view.width)
	assert.Equal(t, 24, view.height)
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil, testRegistry())

	require.NotNil(t, view)
	// Should create default styles
	assert.NotNil(t, view.styles)
}

func TestNewView_NilRegistry(t *testing.T) {
	view := NewView(nil, nil)

	require.NotNil(t, view)
	assert.Empty(t, view.Days())
}

func TestView_Init(t *testing.T) {
	view := NewView(nil, testRegistry())

	cmd := view.Init()

	assert.Nil(t, cmd)
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil, testRegistry())

	msg := tea.WindowSizeMsg{Width: 100, Height: 50}
	updated, cmd := view.Update(msg)

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
	assert.Equal(t, 50, view.height)
}

func TestView_Update_KeyMsg_NavigateDown(t *testing.T) {
	view := NewView(nil, testRegistry())
	view.selected = 0

	// Test down key
	msg := tea.KeyMsg{Type: tea.KeyDown}
	view.Update(msg)
	assert.Equal(t, 1, view.Selected())

	// Test j key
	msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	view.Update(msg)
	assert.Equal(t, 2, view.Selected())

	// Test boundary - can't go past last item
	view.Update(msg)
	assert.Equal(t, 2, view.Selected())
}

func TestView_Update_KeyMsg_NavigateUp(t *testing.T) {
	view := NewView(nil, testRegistry())
	view.selected = 2

	// Test up key
	msg := tea.KeyMsg{Type: tea.KeyUp}
	view.Update(msg)
	assert.Equal(t, 1, view.Selected())

	// Test k key
	msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	view.Update(msg)
	assert.Equal(t, 0, view.Selected())

	// Test boundary - can't go before first item
	view.Update(msg)
	assert.Equal(t, 0, view.Selected())
}

func TestView_Update_KeyMsg_Enter_RunsBothParts(t *testing.T) {
	view := NewView(nil, testRegistry())
	view.selected = 0 // Day 1 has both parts

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	_, cmd := view.Update(msg)

	require.NotNil(t, cmd)
	result := cmd()
	run, ok := result.(messages.RunRequested)
	require.True(t, ok)
	assert.Equal(t, 1, run.Day)
	assert.Equal(t, []int{1, 2}, run.Parts)
}

func TestView_Update_KeyMsg_Enter_RunsOnlyRegisteredParts(t *testing.T) {
	view := NewView(nil, testRegistry())
	view.selected = 1 // Day 2 has part 1 only

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	_, cmd := view.Update(msg)

	require.NotNil(t, cmd)
	result := cmd()
	run, ok := result.(messages.RunRequested)
	require.True(t, ok)
	assert.Equal(t, 2, run.Day)
	assert.Equal(t, []int{1}, run.Parts)
}

func TestView_Update_KeyMsg_One_RunsPartOne(t *testing.T) {
	view := NewView(nil, testRegistry())
	view.selected = 2 // Day 5

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}}
	_, cmd := view.Update(msg)

	require.NotNil(t, cmd)
	result := cmd()
	run, ok := result.(messages.RunRequested)
	require.True(t, ok)
	assert.Equal(t, 5, run.Day)
	assert.Equal(t, []int{1}, run.Parts)
}

func TestView_Update_KeyMsg_Two_UnregisteredPartDoesNothing(t *testing.T) {
	view := NewView(nil, testRegistry())
	view.selected = 1 // Day 2 has no part 2

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}}
	_, cmd := view.Update(msg)

	assert.Nil(t, cmd)
}

func TestView_Update_KeyMsg_Enter_EmptyRegistry(t *testing.T) {
	view := NewView(nil, &MockSolverRegistry{})

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	_, cmd := view.Update(msg)

	assert.Nil(t, cmd)
}

func TestView_Update_KeyMsg_Quit(t *testing.T) {
	view := NewView(nil, testRegistry())

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	_, cmd := view.Update(msg)

	assert.NotNil(t, cmd)
}

func TestView_View_NotReady(t *testing.T) {
	view := NewView(nil, testRegistry())

	rendered := view.View()

	assert.Contains(t, rendered, "Initialising")
}

func TestView_View_ListsDays(t *testing.T) {
	view := NewView(nil, testRegistry())
	view.SetDimensions(80, 24)

	rendered := view.View()

	assert.Contains(t, rendered, "Advent of Code 2023")
	assert.Contains(t, rendered, "3 days implemented, 5 stars")
	assert.Contains(t, rendered, "Trebuchet?!")
	assert.Contains(t, rendered, "Cube Conundrum")
	assert.Contains(t, rendered, "If You Give A Seed A Fertilizer")
	assert.Contains(t, rendered, "[Enter] Run both parts")
}

func TestView_View_MarksSelectedDay(t *testing.T) {
	view := NewView(nil, testRegistry())
	view.SetDimensions(80, 24)
	view.selected = 1

	rendered := view.View()

	assert.Contains(t, rendered, "> Day  2")
}

func TestView_View_EmptyRegistry(t *testing.T) {
	view := NewView(nil, &MockSolverRegistry{})
	view.SetDimensions(80, 24)

	rendered := view.View()

	assert.Contains(t, rendered, "No days implemented yet.")
}

func TestView_View_ScrollsToKeepSelectionVisible(t *testing.T) {
	days := make([]domain.DaySummary, 0, 25)
	for d := 1; d <= 25; d++ {
		days = append(days, domain.DaySummary{Day: d, Parts: []int{1, 2}})
	}
	view := NewView(nil, &MockSolverRegistry{days: days})
	view.SetDimensions(80, 12) // room for 4 day rows
	view.selected = 24

	rendered := view.View()

	assert.Contains(t, rendered, "> Day 25")
	assert.NotContains(t, rendered, "Day  1 ")
}

func TestView_SetDimensions(t *testing.T) {
	view := NewView(nil, testRegistry())

	view.SetDimensions(120, 40)

	assert.True(t, view.ready)
	assert.Equal(t, 120, view.width)
	assert.Equal(t, 40, view.height)
}
