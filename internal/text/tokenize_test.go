package text

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "mixed separators",
			input: "a\tb  c\r\n",
			want: []Token{
				{Word, "a"},
				{Tab, "\t"},
				{Word, "b"},
				{Whitespace, "  "},
				{Word, "c"},
				{Newline, "\r\n"},
			},
		},
		{
			name:  "tabs never merge",
			input: "\t\t",
			want:  []Token{{Tab, "\t"}, {Tab, "\t"}},
		},
		{
			name:  "lone carriage return and newline",
			input: "a\rb\n",
			want: []Token{
				{Word, "a"},
				{Newline, "\r"},
				{Word, "b"},
				{Newline, "\n"},
			},
		},
		{
			name:  "newline then carriage return is two tokens",
			input: "\n\r",
			want:  []Token{{Newline, "\n"}, {Newline, "\r"}},
		},
		{
			name:  "multibyte word",
			input: "héllo wörld",
			want: []Token{
				{Word, "héllo"},
				{Whitespace, " "},
				{Word, "wörld"},
			},
		},
		{
			name:  "other unicode space",
			input: "a\u00a0b",
			want: []Token{
				{Word, "a"},
				{Whitespace, "\u00a0"},
				{Word, "b"},
			},
		},
		{
			name:  "leading and trailing spaces",
			input: "  ls  ",
			want: []Token{
				{Whitespace, "  "},
				{Word, "ls"},
				{Whitespace, "  "},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"echo 'hello world'",
		"a\tb  c\r\n",
		"\r\r\n\n",
		"git commit -m \"x\"\n\tmore",
		"日本語 テキスト　end",
		"trailing\\",
	}
	for _, in := range inputs {
		if got := Join(Tokenize(in)); got != in {
			t.Errorf("Join(Tokenize(%q)) = %q, want %q", in, got, in)
		}
	}
}

func TestLocateWord(t *testing.T) {
	tokens := Tokenize("foo bar\tbaz")
	tests := []struct {
		n        uint32
		wantOK   bool
		wantTok  int
		wantOffs int
	}{
		{0, true, 0, 0},
		{1, true, 2, 4},
		{2, true, 4, 8},
		{3, false, 0, 0},
	}
	for _, tt := range tests {
		loc, ok := LocateWord(tokens, tt.n)
		if ok != tt.wantOK {
			t.Fatalf("LocateWord(%d) ok = %v, want %v", tt.n, ok, tt.wantOK)
		}
		if !ok {
			continue
		}
		if loc.Token != tt.wantTok || loc.Offset != tt.wantOffs {
			t.Errorf("LocateWord(%d) = %+v, want token %d offset %d", tt.n, loc, tt.wantTok, tt.wantOffs)
		}
	}
}
