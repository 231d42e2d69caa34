// Package result provides the run result view for the TUI.
package result

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driving/tui/components/status"
	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driving/tui/keymap"
	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driving/tui/messages"
	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driving/tui/styles"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/ports/driving"
)

// outcome is the state of a single part's run.
type outcome struct {
	answer    string
	inputPath string
	duration  time.Duration
	err       error
	running   bool
}

// View shows the answers and timings for one day's parts.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	runner   driving.PuzzleRunner
	settings driving.SettingsService
	ctx      context.Context

	day      int
	outcomes map[int]*outcome

	width  int
	height int
	ready  bool
}

// NewView creates a new result view.
func NewView(s *styles.Styles, km *keymap.KeyMap, runner driving.PuzzleRunner) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		statusbar: status.NewBar(s, km),
		runner:    runner,
		ctx:       context.Background(),
		outcomes:  make(map[int]*outcome),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithSettings sets the settings service used to locate input files.
func (v *View) WithSettings(settings driving.SettingsService) *View {
	v.settings = settings
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Run starts the given parts of a day and returns the command that
// executes them. Any previous day's outcomes are discarded.
func (v *View) Run(day int, parts []int) tea.Cmd {
	if v.day != day {
		v.outcomes = make(map[int]*outcome)
	}
	v.day = day

	cmds := make([]tea.Cmd, 0, len(parts))
	for _, part := range parts {
		v.outcomes[part] = &outcome{running: true}
		cmds = append(cmds, v.runPart(day, part))
	}
	v.statusbar.SetState(status.StateRunning)
	return tea.Batch(cmds...)
}

// runPart builds the command that executes one part off the UI loop.
func (v *View) runPart(day, part int) tea.Cmd {
	return func() tea.Msg {
		req, err := domain.NewPuzzleRequest(day, part, "")
		if err != nil {
			return messages.RunCompleted{Day: day, Part: part, Err: err}
		}
		req.InputPath = v.inputPath(day)
		result, err := v.runner.Run(v.ctx, req)
		return messages.RunCompleted{Day: day, Part: part, Result: result, Err: err}
	}
}

// inputPath returns the per-day input path under the inputs directory
// from settings, or empty to fall back to the convention.
func (v *View) inputPath(day int) string {
	if v.settings == nil {
		return ""
	}
	settings, err := v.settings.Get()
	if err != nil || settings.InputsDir == "" || settings.InputsDir == domain.DefaultInputsDir {
		return ""
	}
	return domain.InputPathIn(settings.InputsDir, day)
}

// Update handles messages for the result view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.RunCompleted:
		if msg.Day != v.day {
			// A stale completion from a previously selected day
			return v, nil
		}
		o := &outcome{err: msg.Err}
		if msg.Result != nil {
			o.answer = msg.Result.Answer
			o.inputPath = msg.Result.InputPath
			o.duration = msg.Result.Duration
		}
		v.outcomes[msg.Part] = o
		v.refreshStatus()
		return v, nil

	case tea.KeyMsg:
		switch {
		case keymap.Matches(msg.String(), v.keymap.Part1):
			return v, v.Run(v.day, []int{1})
		case keymap.Matches(msg.String(), v.keymap.Part2):
			return v, v.Run(v.day, []int{2})
		}
	}

	return v, nil
}

// refreshStatus summarises the outcomes in the status bar.
func (v *View) refreshStatus() {
	for _, o := range v.outcomes {
		if o.running {
			v.statusbar.SetState(status.StateRunning)
			return
		}
	}
	for _, o := range v.outcomes {
		if o.err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(o.err.Error())
			return
		}
	}
	v.statusbar.SetState(status.StateAnswers)
	v.statusbar.SetMessage(fmt.Sprintf("day %d", v.day))
}

// View renders the result view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Day %d", v.day)))
	b.WriteString("\n\n")

	for _, part := range []int{1, 2} {
		o, ok := v.outcomes[part]
		if !ok {
			continue
		}
		b.WriteString(v.renderPart(part, o))
		b.WriteString("\n")
	}

	if path := v.shownInputPath(); path != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Input: %s", path)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	v.statusbar.SetWidth(v.width)
	b.WriteString(v.statusbar.View())

	return b.String()
}

// renderPart formats one part's line.
func (v *View) renderPart(part int, o *outcome) string {
	label := v.styles.Subtitle.Render(fmt.Sprintf("Part %d:", part))

	switch {
	case o.running:
		return fmt.Sprintf("%s %s", label, v.styles.Muted.Render("running..."))
	case o.err != nil:
		return fmt.Sprintf("%s %s", label, v.styles.Error.Render(o.err.Error()))
	default:
		answer := v.styles.Success.Render(o.answer)
		timing := v.styles.Muted.Render(fmt.Sprintf("(%s)", o.duration))
		return fmt.Sprintf("%s %s  %s", label, answer, timing)
	}
}

// shownInputPath returns the input file shown under the answers, when known.
func (v *View) shownInputPath() string {
	for _, o := range v.outcomes {
		if o.inputPath != "" {
			return o.inputPath
		}
	}
	return ""
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Day returns the day currently shown.
func (v *View) Day() int {
	return v.day
}

// Answer returns the stored answer for a part, or empty.
func (v *View) Answer(part int) string {
	if o, ok := v.outcomes[part]; ok {
		return o.answer
	}
	return ""
}

// Running reports whether any part is still running.
func (v *View) Running() bool {
	for _, o := range v.outcomes {
		if o.running {
			return true
		}
	}
	return false
}

// Err returns the first part error, or nil.
func (v *View) Err() error {
	for _, part := range []int{1, 2} {
		if o, ok := v.outcomes[part]; ok && o.err != nil {
			return o.err
		}
	}
	return nil
}
