package session

import "github.com/batalabs/vshell/internal/domain"

// View is what the input and output panes currently show.
type View interface {
	// InputText returns the input, if the view has one.
	InputText() (string, bool)
	// Cursor returns the byte cursor, if the view has one. A Completed
	// view reports the end of its input.
	Cursor() (int, bool)
}

// Editable is input that has not been run yet.
type Editable struct {
	domain.CommandWithoutOutput
}

// OutputOnly shows an output with no re-editable input.
type OutputOnly struct {
	Output domain.Output
}

// Completed shows a past command with its output.
type Completed struct {
	domain.CompletedCommand
}

func (v *Editable) InputText() (string, bool) { return v.Input, true }
func (v *Editable) Cursor() (int, bool)       { return v.CursorPosition, true }

func (v *OutputOnly) InputText() (string, bool) { return "", false }
func (v *OutputOnly) Cursor() (int, bool)       { return 0, false }

func (v *Completed) InputText() (string, bool) { return v.Input, true }
func (v *Completed) Cursor() (int, bool)       { return len(v.Input), true }

// NewEditable builds an Editable view.
func NewEditable(input string, cursor int) *Editable {
	return &Editable{domain.CommandWithoutOutput{CursorPosition: cursor, Input: input}}
}

// ViewOutput returns the output shown by v, if any.
func ViewOutput(v View) (domain.Output, bool) {
	switch v := v.(type) {
	case *OutputOnly:
		return v.Output, true
	case *Completed:
		return v.Output, true
	}
	return domain.Output{}, false
}
