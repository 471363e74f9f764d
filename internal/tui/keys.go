package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/batalabs/vshell/internal/command"
	"github.com/batalabs/vshell/internal/console"
)

// KeyMap holds the key bindings the console reacts to. Shortcut bindings
// run the same command the command bar would.
type KeyMap struct {
	Quit      key.Binding
	Esc       key.Binding
	Enter     key.Binding
	Backspace key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding

	PageUp   key.Binding
	PageDown key.Binding

	Paste         key.Binding
	Pin           key.Binding
	ToggleHints   key.Binding
	JumpEnd       key.Binding
	CopyOutput    key.Binding
	SwitchHistory key.Binding
	ChoosePath    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit/cancel")),
		Esc:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "command")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "older")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "newer")),
		Left:      key.NewBinding(key.WithKeys("left")),
		Right:     key.NewBinding(key.WithKeys("right")),
		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a")),
		End:       key.NewBinding(key.WithKeys("end")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),

		Paste:         key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Pin:           key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "pin")),
		ToggleHints:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "hints")),
		JumpEnd:       key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "end")),
		CopyOutput:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy output")),
		SwitchHistory: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "history")),
		ChoosePath:    key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "path")),
	}
}

// ShortHelp returns the bindings shown in the idle help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Esc, k.Paste, k.Pin, k.CopyOutput, k.SwitchHistory, k.ChoosePath, k.ToggleHints, k.Quit}
}

// Translate decodes a key press into console events. It returns nil for
// keys the console ignores.
func (k KeyMap) Translate(msg tea.KeyMsg) []console.Event {
	if msg.Paste {
		return []console.Event{console.Paste(string(msg.Runes))}
	}

	switch {
	case key.Matches(msg, k.Quit):
		return one(console.Key(console.EventQuit))
	case key.Matches(msg, k.Esc):
		return one(console.Key(console.EventEsc))
	case key.Matches(msg, k.Enter):
		return one(console.Key(console.EventEnter))
	case key.Matches(msg, k.Backspace):
		return one(console.Key(console.EventBackspace))
	case key.Matches(msg, k.Up):
		return one(console.Key(console.EventUp))
	case key.Matches(msg, k.Down):
		return one(console.Key(console.EventDown))
	case key.Matches(msg, k.Left):
		return one(console.Key(console.EventLeft))
	case key.Matches(msg, k.Right):
		return one(console.Key(console.EventRight))
	case key.Matches(msg, k.Home):
		return one(console.Key(console.EventHome))
	case key.Matches(msg, k.End):
		return one(console.Key(console.EventEnd))

	case key.Matches(msg, k.Paste):
		return one(console.Run(&command.Paste{}))
	case key.Matches(msg, k.Pin):
		return one(console.Run(&command.Pin{}))
	case key.Matches(msg, k.ToggleHints):
		return one(console.Run(&command.ToggleHints{}))
	case key.Matches(msg, k.JumpEnd):
		return one(console.Run(&command.JumpAfter{}))
	case key.Matches(msg, k.CopyOutput):
		return one(console.Run(&command.CopyOutput{}))
	case key.Matches(msg, k.SwitchHistory):
		return one(console.Run(&command.SwitchHistory{}))
	case key.Matches(msg, k.ChoosePath):
		return one(console.Run(&command.ChoosePath{}))
	}

	switch msg.Type {
	case tea.KeyRunes:
		evs := make([]console.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if r == 0 {
				continue
			}
			evs = append(evs, console.Char(r))
		}
		return evs
	case tea.KeySpace:
		return one(console.Char(' '))
	case tea.KeyTab:
		return one(console.Char('\t'))
	}
	return nil
}

func one(ev console.Event) []console.Event {
	return []console.Event{ev}
}
