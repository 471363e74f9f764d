package console

import (
	"github.com/batalabs/vshell/internal/browse"
	"github.com/batalabs/vshell/internal/session"
)

func updateDirectory(m *session.Model, mode *session.DirectoryMode, ev Event, d Deps) (Effect, error) {
	st := mode.State
	switch ev.Kind {
	case EventQuit, EventTerminate:
		m.Mode = &session.Quit{}
		return EffectDisableMouse, nil
	case EventEsc:
		m.Mode = &session.Idle{}
		return EffectDisableMouse, nil
	case EventChar:
		st.AppendSearch(string(ev.Char))
	case EventPaste:
		st.AppendSearch(singleLine(ev.Text))
	case EventBackspace:
		st.BackspaceSearch()
	case EventUp:
		st.MoveRow(-1)
	case EventDown:
		st.MoveRow(1)
	case EventEnter:
		return finishBrowse(m, st.Submit(), d), nil
	case EventMouseDown:
		row, ok := st.RowAt(ev.X, ev.Y)
		if !ok {
			return EffectNone, nil
		}
		st.Row = row
		return finishBrowse(m, st.Activate(row), d), nil
	}
	return EffectNone, nil
}

// finishBrowse inserts the chosen path at the cursor and leaves the browser
// once an action completes it.
func finishBrowse(m *session.Model, a browse.Action, d Deps) Effect {
	if !a.Done {
		return EffectNone
	}
	d.logf("choosepath: insert %q", a.Insert)
	m.Mode = &session.Idle{}
	insertText(m, browse.QuotePath(a.Insert))
	return EffectDisableMouse
}
