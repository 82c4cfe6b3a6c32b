package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Title bar above the entry list
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7")).
			Padding(0, 1)

	// The entry under the cursor
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7"))

	// Entries elsewhere in the list
	EntryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))

	// Position numbers in front of entries
	IndexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	// Status line under the list
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595"))

	// Errors shown in the status line
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))

	// Hint shown when the history is empty
	EmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true)
)
