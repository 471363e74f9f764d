// Package console is the controller: it applies one input event to the
// session model and reports any side effect the host must perform.
package console

import (
	"errors"
	"fmt"
	"os"

	"github.com/batalabs/vshell/internal/command"
	"github.com/batalabs/vshell/internal/execute"
	"github.com/batalabs/vshell/internal/session"
)

// ErrTaskJoin is returned when a cancelled task could not be joined
// cleanly. The session is left in Quit.
var ErrTaskJoin = errors.New("failed to join task")

// Logger is the subset of config.Logger the controller writes to.
type Logger interface {
	Printf(format string, args ...any)
}

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// Runner starts a request in the background.
type Runner interface {
	Start(req execute.Request) session.Task
}

// Deps are the collaborators Update calls out to.
type Deps struct {
	Clipboard Clipboard
	Runner    Runner
	// Getwd reads the process working directory. Defaults to os.Getwd.
	Getwd func() (string, error)
	// DefaultShell replaces a "-" shell argument. Defaults to "sh".
	DefaultShell string
	Log          Logger
}

func (d Deps) getwd() (string, error) {
	if d.Getwd != nil {
		return d.Getwd()
	}
	return os.Getwd()
}

func (d Deps) defaultShell() string {
	if d.DefaultShell != "" {
		return d.DefaultShell
	}
	return "sh"
}

func (d Deps) logf(format string, args ...any) {
	if d.Log != nil {
		d.Log.Printf(format, args...)
	}
}

// EventKind classifies an Event.
type EventKind int

const (
	EventQuit EventKind = iota // quit-intent key, cancels a running task
	EventTerminate
	EventBackspace
	EventEsc
	EventEnter
	EventUp
	EventDown
	EventLeft
	EventRight
	EventHome
	EventEnd
	EventChar
	EventMouseDown
	EventPaste
	EventRun
	EventTick
)

// Event is one decoded input.
type Event struct {
	Kind EventKind
	Char rune
	X, Y int
	Text string
	// Cmd is run directly for EventRun.
	Cmd command.Command
	// Width is the indicator width for EventTick.
	Width int
}

// Key builds an event that carries no payload.
func Key(k EventKind) Event { return Event{Kind: k} }

// Char builds a printable character event.
func Char(r rune) Event { return Event{Kind: EventChar, Char: r} }

// MouseDown builds a click event at a screen cell.
func MouseDown(x, y int) Event { return Event{Kind: EventMouseDown, X: x, Y: y} }

// Paste builds a bracketed paste event.
func Paste(text string) Event { return Event{Kind: EventPaste, Text: text} }

// Run builds an event that runs cmd as if typed in the command bar.
func Run(cmd command.Command) Event { return Event{Kind: EventRun, Cmd: cmd} }

// Tick builds an indicator tick for a pane of the given width.
func Tick(width int) Event { return Event{Kind: EventTick, Width: width} }

// Effect is a side effect the host must apply after Update.
type Effect int

const (
	EffectNone Effect = iota
	EffectEnableMouse
	EffectDisableMouse
)

// Update applies ev to m. The caller must hold the model lock. The only
// error returned is ErrTaskJoin.
func Update(m *session.Model, ev Event, d Deps) (Effect, error) {
	if ev.Kind != EventTick {
		m.ClearStatus()
	}
	switch mode := m.Mode.(type) {
	case *session.Idle:
		return updateIdle(m, ev, d)
	case *session.CommandMode:
		return updateCommand(m, mode, ev, d)
	case *session.DirectoryMode:
		return updateDirectory(m, mode, ev, d)
	case *session.Executing:
		return EffectNone, updateExecuting(m, mode, ev, d)
	}
	return EffectNone, nil
}

func updateExecuting(m *session.Model, ex *session.Executing, ev Event, d Deps) error {
	switch ev.Kind {
	case EventTick:
		ex.Step(ev.Width)
	case EventQuit:
		return cancelTask(m, ex, d)
	case EventTerminate:
		err := cancelTask(m, ex, d)
		m.Mode = &session.Quit{}
		return err
	}
	return nil
}

// cancelTask kills the running task and blocks until it has finished, then
// records its result.
func cancelTask(m *session.Model, ex *session.Executing, d Deps) error {
	ex.Task.Cancel()
	cc, err := ex.Task.Wait()
	if err != nil {
		m.Mode = &session.Quit{}
		d.logf("cancel: join failed: %v", err)
		return fmt.Errorf("%w: %w", ErrTaskJoin, err)
	}
	d.logf("cancel: %q finished as %s", cc.Input, cc.Output.Kind)
	cwd, werr := d.getwd()
	if werr != nil {
		d.logf("getwd: %v", werr)
	}
	m.ApplyCompletion(cc, cwd, werr)
	return nil
}

func updateCommand(m *session.Model, mode *session.CommandMode, ev Event, d Deps) (Effect, error) {
	switch ev.Kind {
	case EventQuit, EventTerminate:
		m.Mode = &session.Quit{}
	case EventEsc:
		m.Mode = &session.Idle{}
	case EventChar:
		mode.Buffer += string(ev.Char)
	case EventPaste:
		mode.Buffer += singleLine(ev.Text)
	case EventBackspace:
		mode.Buffer = dropLastRune(mode.Buffer)
	case EventEnter:
		cmd, err := command.Parse(mode.Buffer)
		if err != nil {
			d.logf("command %q: %v", mode.Buffer, err)
			m.SetStatus(err.Error(), true)
			return EffectNone, nil
		}
		return runCommand(m, cmd, d)
	}
	return EffectNone, nil
}
