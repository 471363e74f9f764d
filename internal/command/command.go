// Package command parses the colon-command language typed into the console's
// command bar.
package command

// Command is one parsed colon command. The concrete types below are the only
// implementations.
type Command interface {
	isCommand()
}

// Hints addresses one word (End empty) or an inclusive range of words.
type Hints struct {
	Begin string
	End   string
}

// IsRange reports whether h addresses a range of words.
func (h Hints) IsRange() bool {
	return h.End != ""
}

type (
	// Quit ends the session.
	Quit struct{}
	// Edit deletes the addressed word or word range from the input.
	Edit struct{ Hints Hints }
	// Select recalls an entry from the combined pinned/history index space.
	// HasIndex is false for a bare "s".
	Select struct {
		Index    int
		HasIndex bool
	}
	// JumpBefore moves the cursor to the start of the hinted word. An empty
	// Hint jumps to the end of the input.
	JumpBefore struct{ Hint string }
	// JumpAfter moves the cursor to the end of the hinted word. An empty
	// Hint jumps to the end of the input.
	JumpAfter struct{ Hint string }
	// Pin toggles the current input in the pinned list.
	Pin struct{}
	// Paste inserts the clipboard text.
	Paste struct{}
	// CopyOutput copies the whole output (nil Hints) or the addressed words.
	CopyOutput struct{ Hints *Hints }
	// ToggleHints shows or hides hint labels.
	ToggleHints struct{}
	// ShellExecute runs the input through Shell with Prefix prepended.
	ShellExecute struct {
		Shell  string
		Prefix string
	}
	// Replace substitutes From with To once near the cursor, or everywhere
	// when Global is set.
	Replace struct {
		From   string
		To     string
		Global bool
	}
	// SwitchHistory toggles between command and directory history display.
	SwitchHistory struct{}
	// ChoosePath opens the directory browser.
	ChoosePath struct{}
)

func (*Quit) isCommand()          {}
func (*Edit) isCommand()          {}
func (*Select) isCommand()        {}
func (*JumpBefore) isCommand()    {}
func (*JumpAfter) isCommand()     {}
func (*Pin) isCommand()           {}
func (*Paste) isCommand()         {}
func (*CopyOutput) isCommand()    {}
func (*ToggleHints) isCommand()   {}
func (*ShellExecute) isCommand()  {}
func (*Replace) isCommand()       {}
func (*SwitchHistory) isCommand() {}
func (*ChoosePath) isCommand()    {}
