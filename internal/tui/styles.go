package tui

import "github.com/charmbracelet/lipgloss"

var (
	HeaderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	HeaderMeta   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	RuleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	PaneTitle    = lipgloss.NewStyle().Foreground(lipgloss.Color("183"))
	HintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	TabStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	CursorStyle  = lipgloss.NewStyle().Reverse(true)
	InputStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	PromptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("183"))
	OutputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	PinnedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("222"))
	IndexStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	DirStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true)
	FileStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	SelectedRow  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62"))
	StatusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	HelpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	BlinkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	SuggestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)
