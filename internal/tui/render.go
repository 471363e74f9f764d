package tui

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/batalabs/vshell/internal/browse"
	"github.com/batalabs/vshell/internal/command"
	"github.com/batalabs/vshell/internal/domain"
	"github.com/batalabs/vshell/internal/session"
	"github.com/batalabs/vshell/internal/text"
)

// ---------------------------------------------------------------------------
// Segments
// ---------------------------------------------------------------------------

// segment is a run of text drawn in one style. A segment whose text is "\n"
// ends the current line.
type segment struct {
	text  string
	style lipgloss.Style
}

// styledLine is one visual line after wrapping.
type styledLine []segment

func (l styledLine) plain() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.text)
	}
	return b.String()
}

func (l styledLine) render() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.style.Render(s.text))
	}
	return b.String()
}

// wrapSegments hard-wraps segments to width display cells.
func wrapSegments(segs []segment, width int) []styledLine {
	if width < 1 {
		width = 1
	}
	var lines []styledLine
	var cur styledLine
	col := 0
	for _, s := range segs {
		if s.text == "\n" {
			lines = append(lines, cur)
			cur, col = nil, 0
			continue
		}
		var chunk strings.Builder
		for _, r := range s.text {
			w := runewidth.RuneWidth(r)
			if col+w > width && col > 0 {
				if chunk.Len() > 0 {
					cur = append(cur, segment{chunk.String(), s.style})
					chunk.Reset()
				}
				lines = append(lines, cur)
				cur, col = nil, 0
			}
			chunk.WriteRune(r)
			col += w
		}
		if chunk.Len() > 0 {
			cur = append(cur, segment{chunk.String(), s.style})
		}
	}
	return append(lines, cur)
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.render()
	}
	return strings.Join(out, "\n")
}

// ---------------------------------------------------------------------------
// Input and output panes
// ---------------------------------------------------------------------------

// textOptions controls how a tokenized text is drawn.
type textOptions struct {
	hints    bool
	tabGlyph string
	base     lipgloss.Style
	// cursor is the byte offset of the cursor, or -1 for none.
	cursor int
}

// textSegments draws s as segments, prefixing each word with its hint
// label when hints are shown and marking the cursor cell.
func textSegments(s string, opt textOptions) []segment {
	var segs []segment
	pos := 0
	word := uint32(0)
	for _, tok := range text.Tokenize(s) {
		switch tok.Kind {
		case text.Word:
			if opt.hints {
				segs = append(segs, segment{text.EncodeHint(word) + ":", HintStyle})
			}
			word++
			segs = appendWithCursor(segs, tok.Text, pos, opt.cursor, opt.base)
		case text.Tab:
			style := TabStyle
			if opt.cursor == pos {
				style = CursorStyle
			}
			segs = append(segs, segment{opt.tabGlyph, style})
		case text.Newline:
			if opt.cursor == pos {
				segs = append(segs, segment{" ", CursorStyle})
			}
			segs = append(segs, segment{"\n", opt.base})
		default:
			segs = appendWithCursor(segs, tok.Text, pos, opt.cursor, opt.base)
		}
		pos += len(tok.Text)
	}
	if opt.cursor == len(s) {
		segs = append(segs, segment{" ", CursorStyle})
	}
	return segs
}

// appendWithCursor appends s, which starts at byte offset start, splitting
// out the rune under the cursor.
func appendWithCursor(segs []segment, s string, start, cursor int, style lipgloss.Style) []segment {
	if cursor < start || cursor >= start+len(s) {
		return append(segs, segment{s, style})
	}
	i := cursor - start
	_, size := utf8.DecodeRuneInString(s[i:])
	if i > 0 {
		segs = append(segs, segment{s[:i], style})
	}
	segs = append(segs, segment{s[i : i+size], CursorStyle})
	if rest := s[i+size:]; rest != "" {
		segs = append(segs, segment{rest, style})
	}
	return segs
}

// inputLines lays out the input pane for the current view.
func inputLines(v session.View, hints bool, glyph string, editing bool, width int) []styledLine {
	input, ok := v.InputText()
	if !ok {
		return []styledLine{{{"(output only, type to start a new command)", HelpStyle}}}
	}
	cursor := -1
	if c, ok := v.Cursor(); ok && editing {
		cursor = c
	}
	segs := []segment{{"❯ ", PromptStyle}}
	segs = append(segs, textSegments(input, textOptions{
		hints:    hints,
		tabGlyph: glyph,
		base:     InputStyle,
		cursor:   cursor,
	})...)
	return wrapSegments(segs, width)
}

// outputContent renders the output pane text, or "" when the view has no
// output.
func outputContent(v session.View, hints bool, glyph string, width int) string {
	out, ok := session.ViewOutput(v)
	if !ok {
		return ""
	}
	s := out.String()
	if s == "" {
		return HelpStyle.Render(fmt.Sprintf("(%s: no output)", out.Origin))
	}
	base := OutputStyle
	if out.IsError() {
		base = ErrorStyle
	}
	segs := textSegments(s, textOptions{hints: hints, tabGlyph: glyph, base: base, cursor: -1})
	return renderLines(wrapSegments(segs, width))
}

// ---------------------------------------------------------------------------
// History pane
// ---------------------------------------------------------------------------

// historyEntry is one line of the history pane.
type historyEntry struct {
	index  int
	input  string
	pinned bool
	failed bool
}

// commandEntries lists pinned commands then history newest first, numbered
// in the combined selection space.
func commandEntries(m *session.Model) []historyEntry {
	var out []historyEntry
	for i, p := range m.PinnedCommands {
		out = append(out, historyEntry{index: i, input: p.Input, pinned: true})
	}
	n := len(m.PinnedCommands)
	for i := len(m.CommandHistory) - 1; i >= 0; i-- {
		cc := m.CommandHistory[i]
		out = append(out, historyEntry{index: n, input: cc.Input, failed: cc.Output.IsError()})
		n++
	}
	return out
}

// historyLines renders at most height lines of the history pane.
func historyLines(m *session.Model, hl highlighter, width, height int) []string {
	var lines []string
	if m.Config.HistoryType == session.DirectoryHistory {
		for i := len(m.DirectoryHistory) - 1; i >= 0 && len(lines) < height; i-- {
			lines = append(lines, DirStyle.Render(truncate(m.DirectoryHistory[i], width)))
		}
		return lines
	}

	entries := commandEntries(m)
	for i, e := range entries {
		if len(lines) >= height {
			break
		}
		if i > 0 && !e.pinned && entries[i-1].pinned {
			lines = append(lines, RuleStyle.Render(strings.Repeat("─", max(width, 1))))
			if len(lines) >= height {
				break
			}
		}
		label := fmt.Sprintf("%3d: ", e.index)
		body := truncate(oneLine(e.input), width-len(label))
		switch {
		case e.pinned:
			body = PinnedStyle.Render(body)
		default:
			body = hl.highlight(body)
		}
		idx := IndexStyle.Render(label)
		if e.failed {
			idx = ErrorStyle.Render(label)
		}
		lines = append(lines, idx+body)
	}
	return lines
}

// highlighter colors shell input with chroma.
type highlighter struct {
	enabled bool
	style   string
}

func (h highlighter) highlight(s string) string {
	if !h.enabled || s == "" {
		return InputStyle.Render(s)
	}
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, s, "bash", "terminal256", h.style); err != nil {
		return InputStyle.Render(s)
	}
	return strings.ReplaceAll(buf.String(), "\n", "")
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ↵ ")
}

// truncate shortens s to width display cells.
func truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// ---------------------------------------------------------------------------
// Directory pane
// ---------------------------------------------------------------------------

// directoryLines renders the browser header and its visible rows. The rows
// occupy region, which is recorded on the state for click resolution.
func directoryLines(s *browse.State, region browse.Rect) []string {
	s.ScreenRegion = &region
	header := PaneTitle.Render(truncate(s.CurrentDir, region.Width/2)) +
		HelpStyle.Render("  filter: ") + InputStyle.Render(s.Search) + CursorStyle.Render(" ")
	lines := []string{header}

	for row := s.Offset; row < s.RowCount() && row < s.Offset+region.Height; row++ {
		var label string
		style := FileStyle
		switch {
		case row == browse.RowCurrent:
			label, style = "./  (insert this directory)", DirStyle
		case row == browse.RowParent:
			label, style = "../", DirStyle
		default:
			child, _ := s.Child(row)
			label = child.Name
			if child.Dir {
				label += string(filepath.Separator)
				style = DirStyle
			}
		}
		label = truncate(label, region.Width)
		if row == s.Row {
			style = SelectedRow
		}
		lines = append(lines, style.Render(label))
	}
	return lines
}

// ---------------------------------------------------------------------------
// Status line
// ---------------------------------------------------------------------------

func statusLine(m *session.Model, keys KeyMap, width int) string {
	switch mode := m.Mode.(type) {
	case *session.CommandMode:
		line := PromptStyle.Render(":") + InputStyle.Render(mode.Buffer) + CursorStyle.Render(" ")
		if m.Status != "" {
			return line + "  " + statusText(m)
		}
		if s := suggestions(mode.Buffer); s != "" {
			line += "  " + SuggestStyle.Render(truncate(s, width-len(mode.Buffer)-4))
		}
		return line
	case *session.Executing:
		pos := int(mode.BlinkPos)
		if pos >= width {
			pos = max(width-1, 0)
		}
		return strings.Repeat(" ", pos) + BlinkStyle.Render("█")
	case *session.DirectoryMode:
		return HelpStyle.Render("type to filter · ↑/↓ move · enter select · click to choose · esc cancel")
	}
	if m.Status != "" {
		return statusText(m)
	}
	return helpLine(keys, width)
}

func statusText(m *session.Model) string {
	if m.StatusError {
		return ErrorStyle.Render(m.Status)
	}
	return StatusStyle.Render(m.Status)
}

// suggestions lists command names completing the buffer's command word,
// or the synopsis once the word is unambiguous.
func suggestions(buf string) string {
	if buf == "" || strings.Contains(buf, ":") {
		return ""
	}
	names := command.Complete(buf)
	if len(names) == 1 {
		if def, ok := command.Lookup(names[0]); ok {
			return def.Synopsis() + " · " + def.Description
		}
	}
	return strings.Join(names, " ")
}

func helpLine(keys KeyMap, width int) string {
	var parts []string
	for _, b := range keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return HelpStyle.Render(truncate(strings.Join(parts, " · "), width))
}

// headerLine shows the working directory, history type and mode.
func headerLine(m *session.Model, width int) string {
	meta := fmt.Sprintf("  %s history · %s", m.Config.HistoryType, session.ModeName(m.Mode))
	dir := truncate(m.LastDirectory(), width-len("vshell ")-len(meta))
	return HeaderStyle.Render("vshell ") + PaneTitle.Render(dir) + HeaderMeta.Render(meta)
}

func rule(title string, width int) string {
	t := "── " + title + " "
	fill := width - runewidth.StringWidth(t)
	if fill < 0 {
		fill = 0
	}
	return RuleStyle.Render(t + strings.Repeat("─", fill))
}

// outputTitle names the origin of the output being shown.
func outputTitle(v session.View) string {
	out, ok := session.ViewOutput(v)
	if !ok {
		return "output"
	}
	switch out.Kind {
	case domain.OutputError:
		return "output (" + out.Origin.String() + ", error)"
	case domain.OutputSuccess:
		return "output (" + out.Origin.String() + ")"
	}
	return "output"
}
