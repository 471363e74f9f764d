package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/batalabs/vshell/internal/browse"
	"github.com/batalabs/vshell/internal/console"
	"github.com/batalabs/vshell/internal/session"
)

// ---------------------------------------------------------------------------
// Bubble Tea message types
// ---------------------------------------------------------------------------

// TaskDoneMsg signals that a background task finished and its result has
// been applied to the session.
type TaskDoneMsg struct{}

// TerminateMsg asks the console to cancel any running task and quit, as on
// SIGTERM.
type TerminateMsg struct{}

// blinkMsg advances the executing indicator.
type blinkMsg struct{}

const blinkInterval = 80 * time.Millisecond

func blink() tea.Cmd {
	return tea.Tick(blinkInterval, func(time.Time) tea.Msg { return blinkMsg{} })
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Options controls rendering.
type Options struct {
	// TabGlyph replaces tab characters on screen.
	TabGlyph string
	// Highlight enables syntax highlighting of history entries.
	Highlight      bool
	HighlightStyle string
}

// Model is the Bubble Tea model: it turns terminal input into console
// events and draws the session.
type Model struct {
	shared *session.Shared
	deps   console.Deps
	keys   KeyMap
	opts   Options
	hl     highlighter

	width  int
	height int

	output     viewport.Model
	outputText string
	ticking    bool

	err error
}

// NewModel builds the TUI over a shared session.
func NewModel(shared *session.Shared, deps console.Deps, opts Options) Model {
	if opts.TabGlyph == "" {
		opts.TabGlyph = "|-->"
	}
	if opts.HighlightStyle == "" {
		opts.HighlightStyle = "dracula"
	}
	return Model{
		shared: shared,
		deps:   deps,
		keys:   DefaultKeyMap(),
		opts:   opts,
		hl:     highlighter{enabled: opts.Highlight, style: opts.HighlightStyle},
		output: viewport.New(80, 10),
	}
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("vshell")
}

// Update handles Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.dispatch(nil)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.PageUp):
			m.output.ViewUp()
			return m, nil
		case key.Matches(msg, m.keys.PageDown):
			m.output.ViewDown()
			return m, nil
		}
		return m.dispatch(m.keys.Translate(msg))

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.dispatch([]console.Event{console.MouseDown(msg.X, msg.Y)})
		}
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd

	case blinkMsg:
		m.ticking = false
		return m.dispatch([]console.Event{console.Tick(m.width)})

	case TaskDoneMsg:
		return m.dispatch(nil)

	case TerminateMsg:
		return m.dispatch([]console.Event{console.Key(console.EventTerminate)})
	}
	return m, nil
}

// dispatch applies evs to the session under its lock and converts the
// resulting effects into commands.
func (m Model) dispatch(evs []console.Event) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	quit := false
	err := m.shared.Do(func(s *session.Model) error {
		for _, ev := range evs {
			eff, err := console.Update(s, ev, m.deps)
			if err != nil {
				return err
			}
			if c := effectCmd(eff); c != nil {
				cmds = append(cmds, c)
			}
			if s.ShouldQuit() {
				break
			}
		}
		m.sync(s)
		quit = s.ShouldQuit()
		if _, ok := s.Mode.(*session.Executing); ok && !m.ticking {
			m.ticking = true
			cmds = append(cmds, blink())
		}
		return nil
	})
	if err != nil {
		m.err = err
		if m.deps.Log != nil {
			m.deps.Log.Printf("tui: %v", err)
		}
		return m, tea.Quit
	}
	if quit {
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Batch(cmds...)
}

func effectCmd(eff console.Effect) tea.Cmd {
	switch eff {
	case console.EffectEnableMouse:
		return tea.EnableMouseCellMotion
	case console.EffectDisableMouse:
		return tea.DisableMouse
	}
	return nil
}

// sync sizes the output viewport and refreshes its content. A new output
// scrolls back to the top.
func (m *Model) sync(s *session.Model) {
	l := computeLayout(m.width, m.height, len(m.inputLines(s)))
	m.output.Width = m.width
	m.output.Height = l.bodyH
	content := outputContent(s.Current, showHints(s), m.opts.TabGlyph, m.width)
	if content != m.outputText {
		m.outputText = content
		m.output.SetContent(content)
		m.output.GotoTop()
	}
}

func showHints(s *session.Model) bool {
	return s.Config.HintState == session.ShowHints
}

func (m Model) inputLines(s *session.Model) []styledLine {
	_, idle := s.Mode.(*session.Idle)
	return inputLines(s.Current, showHints(s), m.opts.TabGlyph, idle, m.width)
}

// ---------------------------------------------------------------------------
// Layout
// ---------------------------------------------------------------------------

// layout holds the first row and height of each pane. The header sits on
// row 0 and the status line on the last row; rules separate the panes.
type layout struct {
	historyY, historyH int
	bodyY, bodyH       int
	inputY, inputH     int
	statusY            int
}

func computeLayout(width, height, inputLines int) layout {
	historyH := clamp(height/4, 1, 10)
	inputH := clamp(inputLines, 1, max(height/4, 1))
	bodyH := max(height-historyH-inputH-4, 1)

	l := layout{historyY: 1, historyH: historyH}
	l.bodyY = l.historyY + historyH + 1
	l.bodyH = bodyH
	l.inputY = l.bodyY + bodyH + 1
	l.inputH = inputH
	l.statusY = l.inputY + inputH
	return l
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

// View renders the full screen.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	var out string
	_ = m.shared.Do(func(s *session.Model) error {
		out = m.render(s)
		return nil
	})
	return out
}

func (m Model) render(s *session.Model) string {
	in := m.inputLines(s)
	l := computeLayout(m.width, m.height, len(in))

	lines := make([]string, 0, m.height)
	lines = append(lines, headerLine(s, m.width))
	lines = append(lines, pad(historyLines(s, m.hl, m.width, l.historyH), l.historyH)...)

	if dm, ok := s.Mode.(*session.DirectoryMode); ok {
		lines = append(lines, rule("choose path", m.width))
		region := browse.Rect{X: 0, Y: l.bodyY + 1, Width: m.width, Height: max(l.bodyH-1, 1)}
		lines = append(lines, pad(directoryLines(dm.State, region), l.bodyH)...)
	} else {
		lines = append(lines, rule(outputTitle(s.Current), m.width))
		vp := m.output
		vp.Height = l.bodyH
		lines = append(lines, pad(strings.Split(vp.View(), "\n"), l.bodyH)...)
	}

	lines = append(lines, rule("input", m.width))
	if len(in) > l.inputH {
		in = in[len(in)-l.inputH:]
	}
	rendered := make([]string, len(in))
	for i, line := range in {
		rendered[i] = line.render()
	}
	lines = append(lines, pad(rendered, l.inputH)...)
	lines = append(lines, statusLine(s, m.keys, m.width))
	return strings.Join(lines, "\n")
}

// pad returns exactly n lines, truncating or filling with blanks.
func pad(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}
