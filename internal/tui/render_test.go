package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/batalabs/vshell/internal/browse"
	"github.com/batalabs/vshell/internal/command"
	"github.com/batalabs/vshell/internal/domain"
	"github.com/batalabs/vshell/internal/session"
)

func plainSegments(segs []segment) string {
	return styledLine(segs).plain()
}

func TestTextSegments(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		hints bool
		want  string
	}{
		{"hints on words", "ls  -l\tx", true, "a:ls  b:-l->c:x"},
		{"hints off", "ls  -l\tx", false, "ls  -l->x"},
		{"newline keeps numbering", "a\nb", true, "a:a\nb:b"},
		{"empty", "", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := textSegments(tt.in, textOptions{hints: tt.hints, tabGlyph: "->", base: InputStyle, cursor: -1})
			if got := plainSegments(segs); got != tt.want {
				t.Errorf("textSegments(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextSegments_hintsPastZ(t *testing.T) {
	in := strings.Repeat("w ", 27)
	got := plainSegments(textSegments(in, textOptions{hints: true, base: InputStyle, cursor: -1}))
	if !strings.HasSuffix(got, "ba:w ") {
		t.Errorf("27th word should carry hint ba, got %q", got)
	}
}

func cursorText(segs []segment) (string, int) {
	for i, s := range segs {
		if s.style.GetReverse() {
			return s.text, i
		}
	}
	return "", -1
}

func TestTextSegments_cursor(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		cursor int
		want   string
	}{
		{"inside word", "abc", 1, "b"},
		{"start", "abc", 0, "a"},
		{"at end", "abc", 3, " "},
		{"on space", "a b", 1, " "},
		{"multibyte rune", "héllo", 1, "é"},
		{"on tab", "a\tb", 1, "->"},
		{"on newline", "a\nb", 1, " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := textSegments(tt.in, textOptions{tabGlyph: "->", base: InputStyle, cursor: tt.cursor})
			got, _ := cursorText(segs)
			if got != tt.want {
				t.Errorf("cursor cell of %q at %d = %q, want %q", tt.in, tt.cursor, got, tt.want)
			}
			if plain := plainSegments(segs); !strings.Contains(plain, strings.ReplaceAll(tt.in, "\t", "->")[:tt.cursor]) {
				t.Errorf("text before cursor lost: %q", plain)
			}
		})
	}
}

func TestTextSegments_noCursor(t *testing.T) {
	segs := textSegments("abc", textOptions{base: InputStyle, cursor: -1})
	if _, i := cursorText(segs); i != -1 {
		t.Errorf("unexpected cursor segment %d", i)
	}
}

func TestWrapSegments(t *testing.T) {
	tests := []struct {
		name  string
		segs  []segment
		width int
		want  []string
	}{
		{"fits", []segment{{"abc", InputStyle}}, 5, []string{"abc"}},
		{"hard wrap", []segment{{"abcdef", InputStyle}}, 4, []string{"abcd", "ef"}},
		{"across segments", []segment{{"ab", HintStyle}, {"cdef", InputStyle}}, 3, []string{"abc", "def"}},
		{"wide runes", []segment{{"日本語", InputStyle}}, 4, []string{"日本", "語"}},
		{"newline", []segment{{"a", InputStyle}, {"\n", InputStyle}, {"b", InputStyle}}, 10, []string{"a", "b"}},
		{"trailing newline", []segment{{"a", InputStyle}, {"\n", InputStyle}}, 10, []string{"a", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := wrapSegments(tt.segs, tt.width)
			var got []string
			for _, l := range lines {
				got = append(got, l.plain())
			}
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("wrapSegments = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInputLines(t *testing.T) {
	t.Run("output only view", func(t *testing.T) {
		v := &session.OutputOnly{Output: domain.Message(domain.Origin{}, "boom")}
		lines := inputLines(v, true, "->", true, 80)
		if len(lines) != 1 || !strings.Contains(lines[0].plain(), "output only") {
			t.Errorf("inputLines = %q", lines[0].plain())
		}
	})

	t.Run("cursor hidden when not editing", func(t *testing.T) {
		v := session.NewEditable("ls", 1)
		lines := inputLines(v, false, "->", false, 80)
		if _, i := cursorText(lines[0]); i != -1 {
			t.Error("cursor should not be drawn outside idle mode")
		}
		if got := lines[0].plain(); got != "❯ ls" {
			t.Errorf("plain = %q", got)
		}
	})
}

func TestOutputContent(t *testing.T) {
	tests := []struct {
		name string
		view session.View
		want string
	}{
		{"editable has none", session.NewEditable("ls", 0), ""},
		{"stdout", &session.Completed{CompletedCommand: domain.CompletedCommand{Input: "echo hi", Output: domain.Success(domain.Origin{}, "hi\n", "")}}, "a:hi"},
		{"empty", &session.Completed{CompletedCommand: domain.CompletedCommand{Input: "true", Output: domain.Success(domain.Origin{Shell: "bash"}, "", "")}}, "(bash: no output)"},
		{"both streams", &session.OutputOnly{Output: domain.Failure(domain.Origin{}, "out", "err")}, "a:STDERR:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(outputContent(tt.view, true, "->", 80))
			if !strings.Contains(got, tt.want) || (tt.want == "" && got != "") {
				t.Errorf("outputContent = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func testHistoryModel() *session.Model {
	m := session.New("/start", session.Config{})
	m.PinnedCommands = []domain.CommandWithoutOutput{{Input: "make"}, {Input: "go test ./..."}}
	m.CommandHistory = []domain.CompletedCommand{
		{Input: "ls", Output: domain.Success(domain.Origin{}, "", "")},
		{Input: "false", Output: domain.Failure(domain.Origin{}, "", "")},
	}
	return m
}

func TestCommandEntries(t *testing.T) {
	entries := commandEntries(testHistoryModel())
	want := []historyEntry{
		{index: 0, input: "make", pinned: true},
		{index: 1, input: "go test ./...", pinned: true},
		{index: 2, input: "false", failed: true},
		{index: 3, input: "ls"},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestCommandEntries_matchSelection(t *testing.T) {
	m := testHistoryModel()
	for _, e := range commandEntries(m) {
		got, ok := m.Selection(e.index)
		if !ok || got.Input != e.input {
			t.Errorf("Selection(%d) = %q, want %q", e.index, got.Input, e.input)
		}
	}
}

func TestHistoryLines(t *testing.T) {
	m := testHistoryModel()
	hl := highlighter{enabled: true, style: "dracula"}

	lines := historyLines(m, hl, 40, 10)
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5 (two pinned, rule, two history)", len(lines))
	}
	wantPrefix := []string{"  0: make", "  1: go test", "──", "  2: false", "  3: ls"}
	for i, w := range wantPrefix {
		if got := ansi.Strip(lines[i]); !strings.HasPrefix(got, w) {
			t.Errorf("line %d = %q, want prefix %q", i, got, w)
		}
	}

	if got := historyLines(m, hl, 40, 2); len(got) != 2 {
		t.Errorf("height 2 gave %d lines", len(got))
	}

	m.Config.HistoryType = session.DirectoryHistory
	m.DirectoryHistory = []string{"/start", "/tmp", "/var"}
	lines = historyLines(m, hl, 40, 10)
	var dirs []string
	for _, l := range lines {
		dirs = append(dirs, ansi.Strip(l))
	}
	if strings.Join(dirs, ",") != "/var,/tmp,/start" {
		t.Errorf("directory history = %q", dirs)
	}
}

func TestHighlighter(t *testing.T) {
	off := highlighter{}
	if got := ansi.Strip(off.highlight("ls -l")); got != "ls -l" {
		t.Errorf("plain highlight = %q", got)
	}
	on := highlighter{enabled: true, style: "dracula"}
	if got := ansi.Strip(on.highlight("echo \"$HOME\"")); got != "echo \"$HOME\"" {
		t.Errorf("highlight changed text: %q", got)
	}
}

func TestDirectoryLines(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	s := browse.NewState(dir)
	region := browse.Rect{X: 0, Y: 5, Width: 60, Height: 3}

	lines := directoryLines(s, region)
	if s.ScreenRegion == nil || *s.ScreenRegion != region {
		t.Fatalf("ScreenRegion = %v, want %v", s.ScreenRegion, region)
	}
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header plus 3 rows", len(lines))
	}
	want := []string{"./", "../", "a.txt"}
	for i, w := range want {
		if got := ansi.Strip(lines[i+1]); !strings.HasPrefix(got, w) {
			t.Errorf("row %d = %q, want prefix %q", i, got, w)
		}
	}

	s.MoveRow(3)
	lines = directoryLines(s, region)
	if got := ansi.Strip(lines[len(lines)-1]); got != "sub"+string(filepath.Separator) {
		t.Errorf("scrolled last row = %q", got)
	}
	if row, ok := s.RowAt(0, 7); !ok || row != s.Offset+2 {
		t.Errorf("RowAt(0, 7) = %d, %v", row, ok)
	}
}

func TestStatusLine(t *testing.T) {
	keys := DefaultKeyMap()

	t.Run("idle shows help", func(t *testing.T) {
		m := session.New("/", session.Config{})
		if got := ansi.Strip(statusLine(m, keys, 200)); !strings.Contains(got, "ctrl+v paste") {
			t.Errorf("status = %q", got)
		}
	})

	t.Run("idle shows status message", func(t *testing.T) {
		m := session.New("/", session.Config{})
		m.SetStatus("copied 3 bytes", false)
		if got := ansi.Strip(statusLine(m, keys, 80)); got != "copied 3 bytes" {
			t.Errorf("status = %q", got)
		}
	})

	t.Run("command buffer", func(t *testing.T) {
		m := session.New("/", session.Config{})
		m.Mode = &session.CommandMode{Buffer: "c:a"}
		if got := ansi.Strip(statusLine(m, keys, 80)); got != ":c:a " {
			t.Errorf("status = %q", got)
		}
	})

	t.Run("executing indicator", func(t *testing.T) {
		m := session.New("/", session.Config{})
		m.Mode = &session.Executing{BlinkPos: 3}
		if got := ansi.Strip(statusLine(m, keys, 80)); got != "   █" {
			t.Errorf("status = %q", got)
		}
	})
}

func TestSuggestions(t *testing.T) {
	if got := suggestions("replace"); got != "replaceglobal replacesingle" {
		t.Errorf("suggestions(replace) = %q", got)
	}
	def, _ := command.Lookup("quit")
	if got := suggestions("qu"); !strings.HasPrefix(got, def.Synopsis()) {
		t.Errorf("suggestions(qu) = %q, want synopsis %q", got, def.Synopsis())
	}
	for _, buf := range []string{"", "s:1", "zzz"} {
		if got := suggestions(buf); got != "" {
			t.Errorf("suggestions(%q) = %q, want empty", buf, got)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 6, "hello…"},
		{"hello", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
