package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram wraps m in a full-screen program. Bracketed paste is on by
// default; mouse capture is switched on only while choosing a path.
func NewProgram(m Model) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen())
}
