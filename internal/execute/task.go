package execute

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/batalabs/vshell/internal/domain"
)

// ErrTaskPanicked is returned by Task.Wait when the task goroutine panicked.
var ErrTaskPanicked = errors.New("task panicked")

// Task is one Request running in the background.
type Task struct {
	ID      string
	Request Request

	cancel chan struct{}
	once   sync.Once
	done   chan struct{}
	result domain.CompletedCommand
	err    error
}

// Cancel asks the task to kill its process. It is safe to call more than once.
func (t *Task) Cancel() {
	t.once.Do(func() { close(t.cancel) })
}

// Wait blocks until the task finishes and returns its result.
func (t *Task) Wait() (domain.CompletedCommand, error) {
	<-t.done
	return t.result, t.err
}

// Start runs req on a new goroutine. onDone, if set, is called from that
// goroutine after the result is available, so it may take locks that the
// caller of Wait does not hold.
func (e *Engine) Start(req Request, onDone func(*Task)) *Task {
	t := &Task{
		ID:      domain.NewTaskID(),
		Request: req,
		cancel:  make(chan struct{}),
		done:    make(chan struct{}),
	}
	e.logf("task %s start: %q shell=%q", t.ID, req.Line, req.Shell)
	go func() {
		start := time.Now()
		t.result, t.err = e.runRecovered(req, t.cancel)
		e.logf("task %s finish: %s in %s", t.ID, t.result.Output.Kind, time.Since(start).Round(time.Millisecond))
		close(t.done)
		if onDone != nil {
			onDone(t)
		}
	}()
	return t
}

func (e *Engine) runRecovered(req Request, cancel <-chan struct{}) (cc domain.CompletedCommand, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logf("task panic: %v", r)
			cc = domain.CompletedCommand{Input: req.Line}
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
		}
	}()
	return e.Run(req, cancel), nil
}
