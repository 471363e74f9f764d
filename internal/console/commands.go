package console

import (
	"fmt"
	"strings"

	"github.com/batalabs/vshell/internal/browse"
	"github.com/batalabs/vshell/internal/command"
	"github.com/batalabs/vshell/internal/domain"
	"github.com/batalabs/vshell/internal/execute"
	"github.com/batalabs/vshell/internal/session"
	"github.com/batalabs/vshell/internal/text"
)

// runCommand applies a parsed command. The mode returns to Idle unless the
// command moves it elsewhere.
func runCommand(m *session.Model, cmd command.Command, d Deps) (Effect, error) {
	m.Mode = &session.Idle{}
	switch c := cmd.(type) {
	case *command.Quit:
		m.Mode = &session.Quit{}
	case *command.Edit:
		if e, ok := m.Reopen(); ok {
			editWords(e, c.Hints)
		}
	case *command.Select:
		if !c.HasIndex {
			m.SetEditable("", 0)
			break
		}
		if sel, ok := m.Selection(c.Index); ok {
			m.SetEditable(sel.Input, sel.CursorPosition)
		}
	case *command.JumpBefore:
		if e, ok := m.Reopen(); ok {
			jump(e, c.Hint, false)
		}
	case *command.JumpAfter:
		if e, ok := m.Reopen(); ok {
			jump(e, c.Hint, true)
		}
	case *command.Pin:
		pin(m)
	case *command.Paste:
		s, err := d.Clipboard.ReadAll()
		if err != nil {
			d.logf("clipboard read: %v", err)
			m.SetStatus("paste: "+err.Error(), true)
			break
		}
		pasteText(m, s)
	case *command.CopyOutput:
		copyOutput(m, c.Hints, d)
	case *command.ToggleHints:
		m.Config.HintState = m.Config.HintState.Toggle()
	case *command.ShellExecute:
		shell := c.Shell
		if shell == "-" {
			shell = d.defaultShell()
		}
		submit(m, d, execute.Request{Shell: shell, Prefix: c.Prefix})
	case *command.Replace:
		replace(m, c)
	case *command.SwitchHistory:
		m.Config.HistoryType = m.Config.HistoryType.Toggle()
	case *command.ChoosePath:
		return choosePath(m, d), nil
	}
	return EffectNone, nil
}

// editWords deletes the hinted word, or the inclusive token run between two
// hinted words, and leaves the cursor where the deletion started.
func editWords(e *session.Editable, h command.Hints) {
	tokens := text.Tokenize(e.Input)
	begin, ok := locate(tokens, h.Begin)
	if !ok {
		return
	}
	end := begin
	if h.IsRange() {
		bi, _ := text.DecodeHint(h.Begin)
		ei, err := text.DecodeHint(h.End)
		if err != nil || ei < bi {
			return
		}
		if end, ok = locate(tokens, h.End); !ok {
			return
		}
	}
	kept := append(tokens[:begin.Token:begin.Token], tokens[end.Token+1:]...)
	e.Input = text.Join(kept)
	e.CursorPosition = begin.Offset
}

func locate(tokens []text.Token, hint string) (text.WordLocation, bool) {
	n, err := text.DecodeHint(hint)
	if err != nil {
		return text.WordLocation{}, false
	}
	return text.LocateWord(tokens, n)
}

// jump moves the cursor to the start or end of the hinted word. An empty or
// unmatched hint moves it to the end of the input.
func jump(e *session.Editable, hint string, after bool) {
	if hint == "" {
		e.CursorPosition = len(e.Input)
		return
	}
	n, err := text.DecodeHint(hint)
	if err != nil {
		return
	}
	tokens := text.Tokenize(e.Input)
	loc, ok := text.LocateWord(tokens, n)
	if !ok {
		e.CursorPosition = len(e.Input)
		return
	}
	e.CursorPosition = loc.Offset
	if after {
		e.CursorPosition += tokens[loc.Token].Len()
	}
}

func pin(m *session.Model) {
	var entry domain.CommandWithoutOutput
	switch v := m.Current.(type) {
	case *session.Editable:
		entry = v.CommandWithoutOutput
	case *session.Completed:
		entry = domain.CommandWithoutOutput{CursorPosition: len(v.Input), Input: v.Input}
	default:
		return
	}
	if entry.Input == "" {
		return
	}
	if m.TogglePin(entry) {
		m.SetStatus("pinned", false)
	} else {
		m.SetStatus("unpinned", false)
	}
}

// pasteText splices s in at the cursor. A Completed view gets s appended and
// is reopened; an OutputOnly view is replaced by s.
func pasteText(m *session.Model, s string) {
	if s == "" {
		return
	}
	insertText(m, s)
}

func copyOutput(m *session.Model, h *command.Hints, d Deps) {
	out, ok := session.ViewOutput(m.Current)
	if !ok {
		return
	}
	s := out.String()
	if h != nil {
		if s, ok = selectWords(s, *h); !ok {
			return
		}
	}
	if err := d.Clipboard.WriteAll(s); err != nil {
		d.logf("clipboard write: %v", err)
		m.SetStatus("copy: "+err.Error(), true)
		return
	}
	m.SetStatus(fmt.Sprintf("copied %d bytes", len(s)), false)
}

// selectWords returns the hinted word, or the words from Begin through End
// with the separators between them.
func selectWords(s string, h command.Hints) (string, bool) {
	tokens := text.Tokenize(s)
	begin, ok := locate(tokens, h.Begin)
	if !ok {
		return "", false
	}
	if !h.IsRange() {
		return tokens[begin.Token].Text, true
	}
	end, ok := locate(tokens, h.End)
	if !ok || end.Token < begin.Token {
		return "", false
	}
	return text.Join(tokens[begin.Token : end.Token+1]), true
}

func replace(m *session.Model, c *command.Replace) {
	if c.From == "" {
		return
	}
	switch v := m.Current.(type) {
	case *session.Editable:
		if c.Global {
			v.Input = strings.ReplaceAll(v.Input, c.From, c.To)
			v.CursorPosition = len(v.Input)
			return
		}
		v.Input, v.CursorPosition = replaceNear(v.Input, clampCursor(v.Input, v.CursorPosition), c.From, c.To)
	case *session.Completed:
		n := 1
		if c.Global {
			n = -1
		}
		in := strings.Replace(v.Input, c.From, c.To, n)
		m.SetEditable(in, len(in))
	}
}

// replaceNear replaces one occurrence of from, searching the text after the
// cursor first, then the text before it, then the whole string for a match
// that straddles the cursor.
func replaceNear(s string, cursor int, from, to string) (string, int) {
	before, after := s[:cursor], s[cursor:]
	switch {
	case strings.Contains(after, from):
		return before + strings.Replace(after, from, to, 1), cursor
	case strings.Contains(before, from):
		return strings.Replace(before, from, to, 1) + after, cursor + len(to) - len(from)
	case strings.Contains(s, from):
		out := strings.Replace(s, from, to, 1)
		return out, len(out)
	}
	return s, cursor
}

func choosePath(m *session.Model, d Deps) Effect {
	if _, ok := m.Current.(*session.Editable); !ok {
		return EffectNone
	}
	dir, err := d.getwd()
	if err != nil {
		d.logf("getwd: %v", err)
		if dir = m.LastDirectory(); dir == "" {
			dir = "."
		}
	}
	m.Mode = &session.DirectoryMode{State: browse.NewState(dir)}
	return EffectEnableMouse
}
