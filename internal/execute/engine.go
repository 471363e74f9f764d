// Package execute runs submitted command lines as child processes, with the
// cd builtin handled in-process.
package execute

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/batalabs/vshell/internal/domain"
	"github.com/kballard/go-shellquote"
)

// Logger is the subset of config.Logger the engine writes to.
type Logger interface {
	Printf(format string, args ...any)
}

// Request is one command line to run. A non-empty Shell runs
// "Shell -c Prefix+Line" instead of splitting Line into argv.
type Request struct {
	Line   string
	Shell  string
	Prefix string
}

func (r Request) origin() domain.Origin {
	return domain.Origin{Shell: r.Shell}
}

// Engine runs Requests. The zero value is ready to use.
type Engine struct {
	// Home resolves the home directory for cd. Defaults to os.UserHomeDir.
	Home func() (string, error)
	// Chdir changes the process working directory. Defaults to os.Chdir.
	Chdir func(dir string) error
	// KillGrace bounds how long Wait may block on inherited pipes after a
	// kill. Defaults to one second.
	KillGrace time.Duration
	Log       Logger
}

// Run executes req and blocks until it finishes or cancel is closed. All
// failures are reported through the returned output.
func (e *Engine) Run(req Request, cancel <-chan struct{}) domain.CompletedCommand {
	cc := domain.CompletedCommand{Input: req.Line}
	if req.Shell != "" {
		cc.Output = e.spawn(req.origin(), req.Shell, []string{"-c", req.Prefix + req.Line}, cancel)
		return cc
	}

	words, err := shellquote.Split(req.Line)
	if err != nil {
		cc.Output = domain.Message(req.origin(), "Failed to parse command: "+err.Error())
		return cc
	}
	args := words[:0]
	for _, w := range words {
		if w != "" {
			args = append(args, w)
		}
	}
	if len(args) == 0 {
		cc.Output = domain.Output{Origin: req.origin()}
		return cc
	}
	if args[0] == "cd" {
		cc.Output = e.cd(args[1:])
		return cc
	}
	cc.Output = e.spawn(req.origin(), args[0], args[1:], cancel)
	return cc
}

func (e *Engine) cd(args []string) domain.Output {
	origin := domain.Origin{}
	if len(args) > 1 {
		return domain.Message(origin, "cd: incorrect number of arguments")
	}

	var target string
	if len(args) == 0 || strings.Contains(args[0], "~") {
		home, err := e.home()
		if err != nil || home == "" {
			e.logf("cd: home lookup failed: %v", err)
			return domain.Message(origin, "cd: could not find home directory")
		}
		if len(args) == 0 {
			target = home
		} else {
			target = strings.ReplaceAll(args[0], "~", home)
		}
	} else {
		target = args[0]
	}

	chdir := e.Chdir
	if chdir == nil {
		chdir = os.Chdir
	}
	if err := chdir(target); err != nil {
		return domain.Message(origin, "cd: "+err.Error())
	}
	return domain.Success(origin, "", "")
}

func (e *Engine) home() (string, error) {
	if e.Home != nil {
		return e.Home()
	}
	return os.UserHomeDir()
}

// spawn starts name with args, captures stdout and stderr separately and
// waits for exit or cancellation.
func (e *Engine) spawn(origin domain.Origin, name string, args []string, cancel <-chan struct{}) domain.Output {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = e.killGrace()
	configureProcess(cmd)

	if err := cmd.Start(); err != nil {
		e.logf("spawn %s: %v", name, err)
		return domain.Message(origin, spawnError(name, err))
	}

	exited := make(chan error, 1)
	go func() { exited <- cmd.Wait() }()

	var err error
	select {
	case err = <-exited:
	case <-cancel:
		if kerr := killProcess(cmd); kerr != nil {
			e.logf("kill pid %d: %v", cmd.Process.Pid, kerr)
			return domain.Message(origin, "failed to kill process: "+kerr.Error())
		}
		err = <-exited
		e.logf("killed pid %d", cmd.Process.Pid)
	}

	switch {
	case err == nil:
		return domain.Success(origin, stdout.String(), stderr.String())
	case isExitError(err):
		return domain.Failure(origin, stdout.String(), stderr.String())
	default:
		msg := stderr.String()
		if msg != "" && !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		return domain.Failure(origin, stdout.String(), msg+err.Error())
	}
}

func (e *Engine) killGrace() time.Duration {
	if e.KillGrace > 0 {
		return e.KillGrace
	}
	return time.Second
}

func (e *Engine) logf(format string, args ...any) {
	if e.Log != nil {
		e.Log.Printf(format, args...)
	}
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

func spawnError(name string, err error) string {
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return "Command not found: " + name
	case errors.Is(err, fs.ErrPermission):
		return "Permission denied"
	default:
		return fmt.Sprintf("Failed to execute command: %v", err)
	}
}
