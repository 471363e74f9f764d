package command

import (
	"sort"
	"strings"
)

// Def describes a colon command available in the command bar.
type Def struct {
	Name        string
	Aliases     []string
	Args        string // argument synopsis for help
	Description string
	Group       string // display group for help
}

// Defs is the single source of truth for the command-bar language.
var Defs = []Def{
	// Editing
	{Name: "change", Aliases: []string{"c"}, Args: "hint[,hint]", Description: "delete a word or word range", Group: "editing"},
	{Name: "jumpbefore", Aliases: []string{"jb"}, Args: "[hint]", Description: "move cursor before a word", Group: "editing"},
	{Name: "jumpafter", Aliases: []string{"ja"}, Args: "[hint]", Description: "move cursor after a word", Group: "editing"},
	{Name: "replacesingle", Aliases: []string{"rs"}, Args: "from,to", Description: "replace nearest occurrence", Group: "editing"},
	{Name: "replaceglobal", Aliases: []string{"rg"}, Args: "from,to", Description: "replace every occurrence", Group: "editing"},
	{Name: "paste", Aliases: []string{"p"}, Description: "paste clipboard at cursor", Group: "editing"},
	{Name: "choosepath", Aliases: []string{"cp"}, Description: "browse for a path to insert", Group: "editing"},
	// History
	{Name: "select", Aliases: []string{"s"}, Args: "[n]", Description: "recall pinned or history entry", Group: "history"},
	{Name: "pin", Description: "pin or unpin current input", Group: "history"},
	{Name: "switchhistory", Aliases: []string{"sh"}, Description: "show command or directory history", Group: "history"},
	// Output
	{Name: "copyoutput", Aliases: []string{"co"}, Args: "[hint[,hint]]", Description: "copy output to clipboard", Group: "output"},
	{Name: "shellexecute", Aliases: []string{"se"}, Args: "shell[,prefix]", Description: "run input through a shell", Group: "output"},
	// General
	{Name: "togglehints", Aliases: []string{"th"}, Description: "show or hide hints", Group: "general"},
	{Name: "quit", Aliases: []string{"q", "exit"}, Description: "quit vshell", Group: "general"},
}

// Groups defines the display order and labels for help groups.
var Groups = []struct {
	Key   string
	Label string
}{
	{"editing", "Editing"},
	{"history", "History"},
	{"output", "Output"},
	{"general", "General"},
}

// Lookup resolves a command name or alias.
func Lookup(name string) (Def, bool) {
	for _, d := range Defs {
		if d.Name == name {
			return d, true
		}
		for _, a := range d.Aliases {
			if a == name {
				return d, true
			}
		}
	}
	return Def{}, false
}

// Complete returns the canonical command names starting with prefix, sorted.
// Aliases match too but complete to their canonical name.
func Complete(prefix string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range Defs {
		match := strings.HasPrefix(d.Name, prefix)
		for _, a := range d.Aliases {
			if a == prefix {
				match = true
			}
		}
		if match && !seen[d.Name] {
			seen[d.Name] = true
			out = append(out, d.Name)
		}
	}
	sort.Strings(out)
	return out
}

// Synopsis renders "name (alias) args" for help and suggestion lines.
func (d Def) Synopsis() string {
	var b strings.Builder
	b.WriteString(d.Name)
	if len(d.Aliases) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(d.Aliases, ", "))
		b.WriteString(")")
	}
	if d.Args != "" {
		b.WriteString(" ")
		b.WriteString(d.Args)
	}
	return b.String()
}
