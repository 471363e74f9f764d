package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrEmptyCommand       = errors.New("empty command")
	ErrInvalidCommand     = errors.New("invalid command")
	ErrInvalidCharacter   = errors.New("invalid character")
	ErrMissingHint        = errors.New("missing hints")
	ErrInvalidNumber      = errors.New("invalid number")
	ErrMissingArgument    = errors.New("missing argument")
	ErrUnexpectedArgument = errors.New("command takes no argument")
)

// Parse turns a command-bar buffer (without the leading ':') into a Command.
// A buffer made only of digits is shorthand for "select:<digits>".
func Parse(buf string) (Command, error) {
	if buf == "" {
		return nil, ErrEmptyCommand
	}
	if isDigits(buf) {
		return parseSelect(buf, true)
	}

	name, arg, hasArg := strings.Cut(buf, ":")

	def, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCommand, name)
	}

	switch def.Name {
	case "quit":
		return noArg(&Quit{}, def, arg)
	case "change":
		h, err := parseHints(arg)
		if err != nil {
			return nil, err
		}
		return &Edit{Hints: h}, nil
	case "select":
		return parseSelect(arg, hasArg)
	case "jumpbefore":
		hint, err := parseLetters(arg)
		if err != nil {
			return nil, err
		}
		return &JumpBefore{Hint: hint}, nil
	case "jumpafter":
		hint, err := parseLetters(arg)
		if err != nil {
			return nil, err
		}
		return &JumpAfter{Hint: hint}, nil
	case "pin":
		return noArg(&Pin{}, def, arg)
	case "paste":
		return noArg(&Paste{}, def, arg)
	case "copyoutput":
		if arg == "" {
			return &CopyOutput{}, nil
		}
		h, err := parseHints(arg)
		if err != nil {
			return nil, err
		}
		return &CopyOutput{Hints: &h}, nil
	case "togglehints":
		return noArg(&ToggleHints{}, def, arg)
	case "shellexecute":
		shell, prefix, _ := strings.Cut(arg, ",")
		if shell == "" {
			return nil, fmt.Errorf("%w: shell name", ErrMissingArgument)
		}
		return &ShellExecute{Shell: shell, Prefix: prefix}, nil
	case "replaceglobal", "replacesingle":
		parts := splitEscaped(arg)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: %s expects from,to", ErrInvalidCommand, def.Name)
		}
		return &Replace{From: parts[0], To: parts[1], Global: def.Name == "replaceglobal"}, nil
	case "switchhistory":
		return noArg(&SwitchHistory{}, def, arg)
	case "choosepath":
		return noArg(&ChoosePath{}, def, arg)
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidCommand, name)
}

func noArg(c Command, def Def, arg string) (Command, error) {
	if arg != "" {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedArgument, def.Name)
	}
	return c, nil
}

func parseSelect(arg string, hasIndex bool) (Command, error) {
	if !hasIndex {
		return &Select{}, nil
	}
	if arg == "" {
		return nil, fmt.Errorf("%w: empty index", ErrInvalidNumber)
	}
	if !isDigits(arg) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, arg)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, arg)
	}
	return &Select{Index: n, HasIndex: true}, nil
}

// parseHints reads "hint" or "hint,hint".
func parseHints(arg string) (Hints, error) {
	begin, end, isRange := strings.Cut(arg, ",")
	if isRange && strings.Contains(end, ",") {
		return Hints{}, fmt.Errorf("%w: too many hints in %q", ErrInvalidCommand, arg)
	}
	b, err := parseLetters(begin)
	if err != nil {
		return Hints{}, err
	}
	if b == "" {
		return Hints{}, ErrMissingHint
	}
	if !isRange {
		return Hints{Begin: b}, nil
	}
	e, err := parseLetters(end)
	if err != nil {
		return Hints{}, err
	}
	if e == "" {
		return Hints{}, ErrMissingHint
	}
	return Hints{Begin: b, End: e}, nil
}

func parseLetters(s string) (string, error) {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return "", fmt.Errorf("%w: %q", ErrInvalidCharacter, r)
		}
	}
	return s, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// splitEscaped splits s on commas that are not preceded by a backslash. A
// backslash escapes whatever follows it and is itself dropped.
func splitEscaped(s string) []string {
	var parts []string
	var cur strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case r == '\\' && !escaped:
			escaped = true
		case r == ',' && !escaped:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
			escaped = false
		}
	}
	return append(parts, cur.String())
}
