package browse

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/batalabs/vshell/internal/domain"
)

// Rows before the children: the current directory itself and its parent.
const (
	RowCurrent = 0
	RowParent  = 1
	fixedRows  = 2
)

// Rect is the on-screen rectangle the browser list was last drawn into.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// State is the browser's state while the console is in directory mode.
type State struct {
	// Search is the typed filter.
	Search string
	// Path is the last path handed back for insertion.
	Path string
	// CurrentDir is the absolute directory being listed.
	CurrentDir string
	// Children is the filtered listing of CurrentDir.
	Children []domain.FileEntry
	// ScreenRegion is set by the renderer so clicks can be resolved.
	ScreenRegion *Rect
	// Row is the highlighted row, using the same numbering as clicks.
	Row int
	// Offset is the first row visible in ScreenRegion.
	Offset int
}

// NewState opens the browser on dir.
func NewState(dir string) *State {
	s := &State{CurrentDir: dir}
	s.Refresh()
	return s
}

// Refresh re-lists CurrentDir and applies the search filter.
func (s *State) Refresh() {
	s.Children = Filter(ListChildren(s.CurrentDir), s.Search)
	s.clampRow()
}

// AppendSearch extends the filter and re-lists.
func (s *State) AppendSearch(text string) {
	s.Search += text
	s.Refresh()
}

// BackspaceSearch drops the last rune of the filter and re-lists.
func (s *State) BackspaceSearch() {
	if s.Search == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.Search)
	s.Search = s.Search[:len(s.Search)-size]
	s.Refresh()
}

// Navigate lists dir, clearing the filter and highlight.
func (s *State) Navigate(dir string) {
	s.CurrentDir = filepath.Clean(dir)
	s.Search = ""
	s.Row = 0
	s.Offset = 0
	s.Refresh()
}

// RowCount is the number of selectable rows.
func (s *State) RowCount() int {
	return fixedRows + len(s.Children)
}

// MoveRow moves the highlight by delta rows and keeps it visible.
func (s *State) MoveRow(delta int) {
	s.Row += delta
	s.clampRow()
	if s.ScreenRegion != nil {
		s.ScrollTo(s.ScreenRegion.Height)
	}
}

// ScrollTo adjusts Offset so the highlighted row fits in height rows.
func (s *State) ScrollTo(height int) {
	if height <= 0 {
		return
	}
	if s.Row < s.Offset {
		s.Offset = s.Row
	}
	if s.Row >= s.Offset+height {
		s.Offset = s.Row - height + 1
	}
}

func (s *State) clampRow() {
	if s.Row >= s.RowCount() {
		s.Row = s.RowCount() - 1
	}
	if s.Row < 0 {
		s.Row = 0
	}
	if s.Offset > s.Row {
		s.Offset = s.Row
	}
}

// RowAt resolves a screen point to a row, using the region recorded by the
// last render.
func (s *State) RowAt(x, y int) (int, bool) {
	if s.ScreenRegion == nil || !s.ScreenRegion.Contains(x, y) {
		return 0, false
	}
	row := y - s.ScreenRegion.Y + s.Offset
	if row >= s.RowCount() {
		return 0, false
	}
	return row, true
}

// Child returns the listing entry drawn at row.
func (s *State) Child(row int) (domain.FileEntry, bool) {
	i := row - fixedRows
	if i < 0 || i >= len(s.Children) {
		return domain.FileEntry{}, false
	}
	return s.Children[i], true
}

// Action is the outcome of activating a row.
type Action struct {
	// Insert holds the path to insert when Done is set.
	Insert string
	// Done reports that the browser should close.
	Done bool
}

// Activate applies row: row 0 inserts the current directory, row 1 moves to
// the parent, and later rows enter a directory or insert a file path.
func (s *State) Activate(row int) Action {
	switch row {
	case RowCurrent:
		return s.insert(s.CurrentDir)
	case RowParent:
		s.Navigate(filepath.Dir(s.CurrentDir))
		return Action{}
	}
	child, ok := s.Child(row)
	if !ok {
		return Action{}
	}
	p := filepath.Join(s.CurrentDir, child.Name)
	if child.Dir {
		s.Navigate(p)
		return Action{}
	}
	return s.insert(p)
}

// Submit handles Enter. A search naming an absolute directory jumps there;
// otherwise the highlighted row is activated.
func (s *State) Submit() Action {
	if filepath.IsAbs(s.Search) {
		if fi, err := os.Stat(s.Search); err == nil && fi.IsDir() {
			s.Navigate(s.Search)
			return Action{}
		}
	}
	return s.Activate(s.Row)
}

func (s *State) insert(p string) Action {
	s.Path = p
	return Action{Insert: p, Done: true}
}
