// Package browse implements the directory browser used to pick a path for
// insertion into the command line.
package browse

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/batalabs/vshell/internal/domain"
)

// ListChildren lists dir sorted by name alone, directories and files
// interleaved. Symlinks are classified by their target. An unreadable
// directory yields no children.
func ListChildren(dir string) []domain.FileEntry {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	out := make([]domain.FileEntry, 0, len(entries))
	for _, e := range entries {
		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			if fi, err := os.Stat(filepath.Join(dir, e.Name())); err == nil {
				isDir = fi.IsDir()
			}
		}
		out = append(out, domain.FileEntry{Name: e.Name(), Dir: isDir})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Filter keeps the entries whose name starts with search, ignoring case.
func Filter(entries []domain.FileEntry, search string) []domain.FileEntry {
	if search == "" {
		return entries
	}
	prefix := strings.ToLower(search)
	var out []domain.FileEntry
	for _, e := range entries {
		if strings.HasPrefix(strings.ToLower(e.Name), prefix) {
			out = append(out, e)
		}
	}
	return out
}

// QuotePath returns p ready to splice into a shell command line. Paths made
// only of safe characters are returned unchanged; anything else is single
// quoted with embedded quotes written as '\''.
func QuotePath(p string) string {
	if p == "" {
		return "''"
	}
	if !strings.ContainsFunc(p, needsQuote) {
		return p
	}
	return "'" + strings.ReplaceAll(p, "'", `'\''`) + "'"
}

func needsQuote(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return !strings.ContainsRune("/._-+,:@%=~", r)
}
