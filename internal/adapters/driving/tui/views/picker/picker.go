// Package picker provides the day selection view for the TUI.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driving/tui/messages"
	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driving/tui/styles"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/ports/driving"
)

// puzzleTitles maps each 2023 day to its puzzle name, for display only.
var puzzleTitles = map[int]string{
	1:  "Trebuchet?!",
	2:  "Cube Conundrum",
	3:  "Gear Ratios",
	4:  "Scratchcards",
	5:  "If You Give A Seed A Fertilizer",
	6:  "Wait For It",
	7:  "Camel Cards",
	8:  "Haunted Wasteland",
	9:  "Mirage Maintenance",
	10: "Pipe Maze",
	11: "Cosmic Expansion",
	12: "Hot Springs",
	13: "Point of Incidence",
	14: "Parabolic Reflector Dish",
	15: "Lens Library",
	16: "The Floor Will Be Lava",
	17: "Clumsy Crucible",
	18: "Lavaduct Lagoon",
	19: "Aplenty",
	20: "Pulse Propagation",
	21: "Step Counter",
	22: "Sand Slabs",
	23: "A Long Walk",
	24: "Never Tell Me The Odds",
	25: "Snowverload",
}

// View lists the implemented days and lets the user pick one to run.
type View struct {
	styles   *styles.Styles
	registry driving.SolverRegistry
	days     []domain.DaySummary
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new picker view over the registry's implemented days.
func NewView(s *styles.Styles, registry driving.SolverRegistry) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:   s,
		registry: registry,
		width:    80,
		height:   24,
	}
	if registry != nil {
		v.days = registry.Days()
	}
	return v
}

// Init initialises the picker view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.days)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			return v, v.requestRun(nil)

		case "1":
			return v, v.requestRun([]int{1})

		case "2":
			return v, v.requestRun([]int{2})

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// requestRun emits a RunRequested for the highlighted day. With nil
// parts every registered part runs; otherwise only the registered
// subset of the requested parts.
func (v *View) requestRun(parts []int) tea.Cmd {
	if v.selected >= len(v.days) {
		return nil
	}
	day := v.days[v.selected]

	run := parts
	if run == nil {
		run = day.Parts
	} else {
		run = registeredOnly(run, day.Parts)
	}
	if len(run) == 0 {
		return nil
	}

	return func() tea.Msg {
		return messages.RunRequested{Day: day.Day, Parts: run}
	}
}

func registeredOnly(want, registered []int) []int {
	var out []int
	for _, w := range want {
		for _, r := range registered {
			if w == r {
				out = append(out, w)
			}
		}
	}
	return out
}

// View renders the picker.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Advent of Code 2023"))
	b.WriteString("\n\n")

	if len(v.days) == 0 {
		b.WriteString(v.styles.Muted.Render("No days implemented yet."))
		return b.String()
	}

	stars := 0
	for _, d := range v.days {
		stars += len(d.Parts)
	}
	subtitle := fmt.Sprintf("%d days implemented, %d stars", len(v.days), stars)
	b.WriteString(v.styles.Muted.Render(subtitle))
	b.WriteString("\n\n")

	win := v.visibleRange()
	for i := win.from; i < win.to; i++ {
		b.WriteString(v.renderDay(i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Run both parts  [1/2] Run one part  [q] Quit"))

	return b.String()
}

type window struct {
	from, to int
}

// visibleRange keeps the selected day on screen when the list is taller
// than the terminal.
func (v *View) visibleRange() window {
	visible := v.height - 8
	if visible < 1 {
		visible = 1
	}

	from := 0
	if v.selected >= visible {
		from = v.selected - visible + 1
	}
	to := from + visible
	if to > len(v.days) {
		to = len(v.days)
	}
	return window{from: from, to: to}
}

// renderDay formats a single day line with its earned stars.
func (v *View) renderDay(index int) string {
	day := v.days[index]
	stars := strings.Repeat("*", len(day.Parts))

	if index == v.selected {
		label := fmt.Sprintf("Day %2d  %-2s  %s", day.Day, stars, puzzleTitles[day.Day])
		return "> " + v.styles.Selected.Render(label)
	}
	return "  " + v.styles.Normal.Render(fmt.Sprintf("Day %2d  ", day.Day)) +
		v.styles.Star.Render(fmt.Sprintf("%-2s", stars)) +
		v.styles.Normal.Render(fmt.Sprintf("  %s", puzzleTitles[day.Day]))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Days returns the listed day summaries.
func (v *View) Days() []domain.DaySummary {
	return v.days
}
