// Package domain holds the value types shared by the console, the engine
// and the renderer.
package domain

import "strings"

// Origin records how a command was executed. An empty Shell means the
// console split and spawned the argv itself.
type Origin struct {
	Shell string
}

// IsVshell reports whether the command ran through the default argv path.
func (o Origin) IsVshell() bool {
	return o.Shell == ""
}

func (o Origin) String() string {
	if o.IsVshell() {
		return "vshell"
	}
	return o.Shell
}

// OutputKind classifies an Output.
type OutputKind int

const (
	OutputEmpty OutputKind = iota
	OutputSuccess
	OutputError
)

func (k OutputKind) String() string {
	switch k {
	case OutputSuccess:
		return "success"
	case OutputError:
		return "error"
	default:
		return "empty"
	}
}

// Output is the captured result of one command. Stdout and Stderr are kept
// apart and only merged by String.
type Output struct {
	Origin Origin
	Kind   OutputKind
	Stdout string
	Stderr string
}

// Success builds a successful Output.
func Success(origin Origin, stdout, stderr string) Output {
	return Output{Origin: origin, Kind: OutputSuccess, Stdout: stdout, Stderr: stderr}
}

// Failure builds an error Output.
func Failure(origin Origin, stdout, stderr string) Output {
	return Output{Origin: origin, Kind: OutputError, Stdout: stdout, Stderr: stderr}
}

// Message builds an error Output carrying msg on stderr, for failures the
// console reports itself.
func Message(origin Origin, msg string) Output {
	return Failure(origin, "", msg)
}

// IsError reports whether the output is of kind error.
func (o Output) IsError() bool {
	return o.Kind == OutputError
}

// String formats the output for display and copying: nothing when both
// streams are empty, the single non-empty stream, or both streams labelled
// with stderr first.
func (o Output) String() string {
	switch {
	case o.Stdout == "" && o.Stderr == "":
		return ""
	case o.Stderr == "":
		return o.Stdout
	case o.Stdout == "":
		return o.Stderr
	}
	var b strings.Builder
	b.WriteString("STDERR:\n\n")
	b.WriteString(o.Stderr)
	b.WriteString("\nSTDOUT:\n\n")
	b.WriteString(o.Stdout)
	return b.String()
}

// CompletedCommand is a submitted input together with its output.
type CompletedCommand struct {
	Input  string
	Output Output
}

// CommandWithoutOutput is editable input with its byte cursor. It is also
// the record saved for a pinned command.
type CommandWithoutOutput struct {
	CursorPosition int
	Input          string
}

// FileEntry is one child of a browsed directory.
type FileEntry struct {
	Name string
	Dir  bool
}
