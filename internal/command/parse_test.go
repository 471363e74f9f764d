package command

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Command
		wantErr error
	}{
		{name: "quit short", input: "q", want: &Quit{}},
		{name: "quit long", input: "quit", want: &Quit{}},
		{name: "exit alias", input: "exit", want: &Quit{}},
		{name: "quit with argument", input: "q:now", wantErr: ErrUnexpectedArgument},
		{name: "empty", input: "", wantErr: ErrEmptyCommand},
		{name: "unknown", input: "frobnicate", wantErr: ErrInvalidCommand},

		{name: "change single", input: "c:b", want: &Edit{Hints: Hints{Begin: "b"}}},
		{name: "change range", input: "change:b,d", want: &Edit{Hints: Hints{Begin: "b", End: "d"}}},
		{name: "change missing hint", input: "c", wantErr: ErrMissingHint},
		{name: "change empty range end", input: "c:b,", wantErr: ErrMissingHint},
		{name: "change digit", input: "c:b1", wantErr: ErrInvalidCharacter},
		{name: "change three hints", input: "c:a,b,c", wantErr: ErrInvalidCommand},

		{name: "select bare", input: "s", want: &Select{}},
		{name: "select empty argument", input: "s:", wantErr: ErrInvalidNumber},
		{name: "select index", input: "select:12", want: &Select{Index: 12, HasIndex: true}},
		{name: "select letters", input: "s:x", wantErr: ErrInvalidCharacter},
		{name: "select overflow", input: "s:99999999999999999999999", wantErr: ErrInvalidNumber},
		{name: "bare digits", input: "3", want: &Select{Index: 3, HasIndex: true}},

		{name: "jump before", input: "jb:c", want: &JumpBefore{Hint: "c"}},
		{name: "jump before empty", input: "jumpbefore", want: &JumpBefore{}},
		{name: "jump after", input: "ja:ab", want: &JumpAfter{Hint: "ab"}},
		{name: "jump after bad", input: "ja:a-b", wantErr: ErrInvalidCharacter},

		{name: "pin", input: "pin", want: &Pin{}},
		{name: "paste", input: "p", want: &Paste{}},
		{name: "paste long", input: "paste", want: &Paste{}},

		{name: "copy all", input: "co", want: &CopyOutput{}},
		{name: "copy single", input: "copyoutput:c", want: &CopyOutput{Hints: &Hints{Begin: "c"}}},
		{name: "copy range", input: "co:a,c", want: &CopyOutput{Hints: &Hints{Begin: "a", End: "c"}}},

		{name: "toggle hints", input: "th", want: &ToggleHints{}},

		{name: "shell only", input: "se:bash", want: &ShellExecute{Shell: "bash"}},
		{name: "shell with prefix", input: "shellexecute:zsh,source ~/.zshrc; ", want: &ShellExecute{Shell: "zsh", Prefix: "source ~/.zshrc; "}},
		{name: "shell missing", input: "se", wantErr: ErrMissingArgument},

		{name: "replace global", input: "rg:foo,bar", want: &Replace{From: "foo", To: "bar", Global: true}},
		{name: "replace single", input: "replacesingle:a,b", want: &Replace{From: "a", To: "b"}},
		{name: "replace escaped comma", input: `rs:a\,b,c`, want: &Replace{From: "a,b", To: "c"}},
		{name: "replace escaped backslash", input: `rs:a\\,c`, want: &Replace{From: `a\`, To: "c"}},
		{name: "replace empty to", input: "rs:abc,", want: &Replace{From: "abc", To: ""}},
		{name: "replace single segment", input: "rs:abc", wantErr: ErrInvalidCommand},
		{name: "replace three segments", input: "rg:a,b,c", wantErr: ErrInvalidCommand},

		{name: "switch history", input: "sh", want: &SwitchHistory{}},
		{name: "choose path", input: "cp", want: &ChoosePath{}},
		{name: "choose path long", input: "choosepath", want: &ChoosePath{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitEscaped(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{""}},
		{"a,b", []string{"a", "b"}},
		{`a\,b`, []string{"a,b"}},
		{`\a\\b`, []string{`a\b`}},
		{",", []string{"", ""}},
	}
	for _, tt := range tests {
		if got := splitEscaped(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitEscaped(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
