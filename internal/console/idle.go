package console

import (
	"strings"
	"unicode/utf8"

	"github.com/batalabs/vshell/internal/execute"
	"github.com/batalabs/vshell/internal/session"
	"github.com/batalabs/vshell/internal/text"
)

func updateIdle(m *session.Model, ev Event, d Deps) (Effect, error) {
	switch ev.Kind {
	case EventQuit, EventTerminate:
		m.Mode = &session.Quit{}
	case EventEsc:
		m.Mode = &session.CommandMode{}
	case EventChar:
		insertText(m, string(ev.Char))
	case EventPaste:
		pasteText(m, ev.Text)
	case EventBackspace:
		backspace(m)
	case EventEnter:
		submit(m, d, execute.Request{})
	case EventUp:
		if m.CommandHistoryIndex > 0 {
			m.CommandHistoryIndex--
			m.Current = &session.Completed{CompletedCommand: m.CommandHistory[m.CommandHistoryIndex]}
		}
	case EventDown:
		if n := len(m.CommandHistory); n > 0 && m.CommandHistoryIndex < n-1 {
			m.CommandHistoryIndex++
			m.Current = &session.Completed{CompletedCommand: m.CommandHistory[m.CommandHistoryIndex]}
		} else {
			m.SetEditable("", 0)
		}
	case EventLeft:
		switch v := m.Current.(type) {
		case *session.Editable:
			v.CursorPosition = prevRune(v.Input, v.CursorPosition)
		case *session.Completed:
			m.SetEditable(v.Input, prevRune(v.Input, len(v.Input)))
		}
	case EventRight:
		switch v := m.Current.(type) {
		case *session.Editable:
			v.CursorPosition = nextRune(v.Input, v.CursorPosition)
		case *session.Completed:
			m.SetEditable(v.Input, len(v.Input))
		}
	case EventHome:
		if e, ok := m.Reopen(); ok {
			e.CursorPosition = 0
		}
	case EventEnd:
		if e, ok := m.Reopen(); ok {
			e.CursorPosition = len(e.Input)
		}
	case EventRun:
		if ev.Cmd != nil {
			return runCommand(m, ev.Cmd, d)
		}
	}
	return EffectNone, nil
}

// insertText types s at the cursor. A Completed view is reopened with s
// appended; an OutputOnly view is replaced by s.
func insertText(m *session.Model, s string) {
	switch v := m.Current.(type) {
	case *session.Editable:
		c := clampCursor(v.Input, v.CursorPosition)
		v.Input = v.Input[:c] + s + v.Input[c:]
		v.CursorPosition = c + len(s)
	case *session.Completed:
		in := v.Input + s
		m.SetEditable(in, len(in))
	case *session.OutputOnly:
		m.SetEditable(s, len(s))
	}
}

func backspace(m *session.Model) {
	switch v := m.Current.(type) {
	case *session.Editable:
		c := clampCursor(v.Input, v.CursorPosition)
		if c == 0 {
			return
		}
		p := prevRune(v.Input, c)
		v.Input = v.Input[:p] + v.Input[c:]
		v.CursorPosition = p
	case *session.Completed:
		in := dropLastRune(v.Input)
		m.SetEditable(in, len(in))
	}
}

// submit runs the editable input, or continues it on a new line when a quote
// is still open or the line ends with a backslash.
func submit(m *session.Model, d Deps, req execute.Request) {
	e, ok := m.Reopen()
	if !ok || e.Input == "" {
		return
	}
	if _, open := text.OpenQuote(e.Input); open || strings.HasSuffix(e.Input, `\`) {
		e.Input += "\n"
		e.CursorPosition = len(e.Input)
		return
	}
	e.CursorPosition = len(e.Input)
	req.Line = e.Input
	task := d.Runner.Start(req)
	m.Mode = session.NewExecuting(task)
}

func clampCursor(s string, c int) int {
	if c < 0 {
		return 0
	}
	if c > len(s) {
		return len(s)
	}
	for c > 0 && c < len(s) && !utf8.RuneStart(s[c]) {
		c--
	}
	return c
}

func prevRune(s string, c int) int {
	c = clampCursor(s, c)
	if c == 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(s[:c])
	return c - size
}

func nextRune(s string, c int) int {
	c = clampCursor(s, c)
	if c >= len(s) {
		return len(s)
	}
	_, size := utf8.DecodeRuneInString(s[c:])
	return c + size
}

func dropLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

func singleLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
