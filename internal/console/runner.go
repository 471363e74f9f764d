package console

import (
	"errors"
	"os"

	"github.com/batalabs/vshell/internal/execute"
	"github.com/batalabs/vshell/internal/session"
)

// TaskRunner starts requests on an Engine and applies each result to the
// shared model when it finishes.
type TaskRunner struct {
	Shared *session.Shared
	Engine *execute.Engine
	// Getwd reads the process working directory. Defaults to os.Getwd.
	Getwd func() (string, error)
	// Notify is called after a result has been applied, outside the lock.
	Notify func()
	Log    Logger
}

// Start implements Runner.
func (r *TaskRunner) Start(req execute.Request) session.Task {
	return r.Engine.Start(req, r.finish)
}

func (r *TaskRunner) finish(t *execute.Task) {
	cc, err := t.Wait()
	_ = r.Shared.Do(func(m *session.Model) error {
		ex, ok := m.Mode.(*session.Executing)
		if !ok || ex.Task != session.Task(t) {
			// already applied by a cancel
			return nil
		}
		if err != nil {
			r.logf("task %s %q: %v", t.ID, t.Request.Line, err)
			if errors.Is(err, execute.ErrTaskPanicked) {
				m.SetStatus(err.Error(), true)
			}
			m.Mode = &session.Quit{}
			return nil
		}
		cwd, werr := r.getwd()
		if werr != nil {
			r.logf("getwd: %v", werr)
		}
		m.ApplyCompletion(cc, cwd, werr)
		return nil
	})
	if r.Notify != nil {
		r.Notify()
	}
}

func (r *TaskRunner) getwd() (string, error) {
	if r.Getwd != nil {
		return r.Getwd()
	}
	return os.Getwd()
}

func (r *TaskRunner) logf(format string, args ...any) {
	if r.Log != nil {
		r.Log.Printf(format, args...)
	}
}
