// Package session holds the console's state: the current view, the mode
// state machine, history, pins and directory history.
package session

import (
	"sync"

	"github.com/batalabs/vshell/internal/domain"
)

// HintState controls whether hint labels are drawn.
type HintState int

const (
	ShowHints HintState = iota
	HideHints
)

// Toggle flips the state.
func (h HintState) Toggle() HintState {
	if h == ShowHints {
		return HideHints
	}
	return ShowHints
}

// HistoryType selects which history the history pane lists.
type HistoryType int

const (
	CommandHistory HistoryType = iota
	DirectoryHistory
)

// Toggle flips the type.
func (h HistoryType) Toggle() HistoryType {
	if h == CommandHistory {
		return DirectoryHistory
	}
	return CommandHistory
}

func (h HistoryType) String() string {
	if h == DirectoryHistory {
		return "directory"
	}
	return "command"
}

// Config is the display configuration that commands can change at runtime.
type Config struct {
	HintState   HintState
	HistoryType HistoryType
}

// Model is the whole console state.
type Model struct {
	Mode   Mode
	Config Config

	// CommandHistory is append-only and chronological.
	CommandHistory []domain.CompletedCommand
	// CommandHistoryIndex is the Up/Down browsing cursor, in
	// [0, len(CommandHistory)].
	CommandHistoryIndex int
	// DirectoryHistory always holds at least the starting directory.
	DirectoryHistory []string
	// PinnedCommands never holds two entries with the same Input.
	PinnedCommands []domain.CommandWithoutOutput

	Current View

	// Status is a one-line message for the status bar, cleared on the next
	// keystroke.
	Status      string
	StatusError bool
}

// New returns a session started in startDir.
func New(startDir string, cfg Config) *Model {
	return &Model{
		Mode:             &Idle{},
		Config:           cfg,
		DirectoryHistory: []string{startDir},
		Current:          NewEditable("", 0),
	}
}

// ShouldQuit reports whether the session has reached Quit.
func (m *Model) ShouldQuit() bool {
	_, ok := m.Mode.(*Quit)
	return ok
}

// SetEditable replaces the view with editable input and resets history
// browsing.
func (m *Model) SetEditable(input string, cursor int) {
	m.Current = NewEditable(input, cursor)
	m.ResetHistoryIndex()
}

// ResetHistoryIndex points the Up/Down cursor past the newest entry.
func (m *Model) ResetHistoryIndex() {
	m.CommandHistoryIndex = len(m.CommandHistory)
}

// Reopen turns a Completed view into an Editable copy with the cursor at the
// end and resets history browsing. It returns the editable view, or false
// for an OutputOnly view.
func (m *Model) Reopen() (*Editable, bool) {
	switch v := m.Current.(type) {
	case *Editable:
		return v, true
	case *Completed:
		m.SetEditable(v.Input, len(v.Input))
		return m.Current.(*Editable), true
	}
	return nil, false
}

// SelectionLen is the size of the combined pinned and history index space.
func (m *Model) SelectionLen() int {
	return len(m.PinnedCommands) + len(m.CommandHistory)
}

// Selection resolves i in the combined index space: pinned entries first in
// order, then history newest first. Pinned entries keep their saved cursor;
// history entries put the cursor at the end.
func (m *Model) Selection(i int) (domain.CommandWithoutOutput, bool) {
	if i < 0 || i >= m.SelectionLen() {
		return domain.CommandWithoutOutput{}, false
	}
	if i < len(m.PinnedCommands) {
		return m.PinnedCommands[i], true
	}
	h := m.CommandHistory[len(m.CommandHistory)+len(m.PinnedCommands)-i-1]
	return domain.CommandWithoutOutput{CursorPosition: len(h.Input), Input: h.Input}, true
}

// TogglePin removes the pin with entry's input, or appends entry. Empty input
// is ignored. It reports whether entry is pinned afterwards.
func (m *Model) TogglePin(entry domain.CommandWithoutOutput) bool {
	if entry.Input == "" {
		return false
	}
	for i, p := range m.PinnedCommands {
		if p.Input == entry.Input {
			m.PinnedCommands = append(m.PinnedCommands[:i:i], m.PinnedCommands[i+1:]...)
			return false
		}
	}
	m.PinnedCommands = append(m.PinnedCommands, entry)
	return true
}

// LastDirectory is the most recently recorded directory.
func (m *Model) LastDirectory() string {
	if len(m.DirectoryHistory) == 0 {
		return ""
	}
	return m.DirectoryHistory[len(m.DirectoryHistory)-1]
}

// PushDirectory records dir unless it equals the last recorded entry.
func (m *Model) PushDirectory(dir string) {
	if dir == "" || dir == m.LastDirectory() {
		return
	}
	m.DirectoryHistory = append(m.DirectoryHistory, dir)
}

// ApplyCompletion records a finished command: it is appended to history and
// its output shown, history browsing is reset, the working directory is
// recorded when known, and the mode returns to Idle.
func (m *Model) ApplyCompletion(cc domain.CompletedCommand, cwd string, cwdErr error) {
	m.CommandHistory = append(m.CommandHistory, cc)
	m.Current = &OutputOnly{Output: cc.Output}
	m.ResetHistoryIndex()
	if cwdErr == nil {
		m.PushDirectory(cwd)
	}
	m.Mode = &Idle{}
}

// SetStatus shows msg in the status bar.
func (m *Model) SetStatus(msg string, isErr bool) {
	m.Status = msg
	m.StatusError = isErr
}

// ClearStatus removes any status message.
func (m *Model) ClearStatus() {
	m.Status = ""
	m.StatusError = false
}

// Shared guards a Model shared between the foreground loop and the running
// task.
type Shared struct {
	mu    sync.Mutex
	model *Model
}

// NewShared wraps m.
func NewShared(m *Model) *Shared {
	return &Shared{model: m}
}

// Do runs fn with exclusive access to the model.
func (s *Shared) Do(fn func(m *Model) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.model)
}
