package session

import (
	"github.com/batalabs/vshell/internal/browse"
	"github.com/batalabs/vshell/internal/domain"
)

// Mode is the console's state machine driver. The concrete types below are
// the only implementations.
type Mode interface {
	isMode()
}

// Task is a running background command that can be cancelled and joined.
type Task interface {
	Cancel()
	Wait() (domain.CompletedCommand, error)
}

type (
	// Idle accepts editing keys and shortcuts.
	Idle struct{}
	// CommandMode collects a colon command in Buffer.
	CommandMode struct{ Buffer string }
	// DirectoryMode browses the filesystem for a path to insert.
	DirectoryMode struct{ State *browse.State }
	// Executing owns the running task until it completes or is cancelled.
	Executing struct {
		BlinkDir bool
		BlinkPos uint16
		Task     Task
	}
	// Quit is terminal.
	Quit struct{}
)

func (*Idle) isMode()          {}
func (*CommandMode) isMode()   {}
func (*DirectoryMode) isMode() {}
func (*Executing) isMode()     {}
func (*Quit) isMode()          {}

// NewExecuting enters the executing mode for task.
func NewExecuting(task Task) *Executing {
	return &Executing{BlinkDir: true, Task: task}
}

// Step advances the activity indicator one cell within width, bouncing at
// either end.
func (e *Executing) Step(width int) {
	if width <= 1 {
		e.BlinkPos = 0
		return
	}
	last := uint16(width - 1)
	if e.BlinkPos > last {
		e.BlinkPos = last
	}
	if e.BlinkDir {
		if e.BlinkPos >= last {
			e.BlinkDir = false
			e.BlinkPos--
			return
		}
		e.BlinkPos++
		return
	}
	if e.BlinkPos == 0 {
		e.BlinkDir = true
		e.BlinkPos++
		return
	}
	e.BlinkPos--
}

// ModeName is a short label for the status line and logs.
func ModeName(m Mode) string {
	switch m.(type) {
	case *Idle:
		return "idle"
	case *CommandMode:
		return "command"
	case *DirectoryMode:
		return "directory"
	case *Executing:
		return "executing"
	case *Quit:
		return "quit"
	default:
		return "unknown"
	}
}
