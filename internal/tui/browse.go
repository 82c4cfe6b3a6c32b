// Package tui implements the interactive history browser: a bubbletea
// list over the session's directory stack, where picking an entry walks
// the history back to it.
package tui

import (
	"context"
	"fmt"
	"strings"

	"hopd/internal/nav"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// BrowseModel is the bubbletea model for the history browser
type BrowseModel struct {
	session *nav.Session
	keys    KeyMap
	help    help.Model

	// History snapshot, most recent first
	entries []string
	cursor  int

	status   string
	errMsg   string
	finalDir string
}

// NewBrowse creates a browser over the given session. The session's
// verbose reporting should be off while the browser owns the terminal.
func NewBrowse(session *nav.Session) *BrowseModel {
	m := &BrowseModel{
		session: session,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.refresh()
	return m
}

// refresh re-snapshots the history, most recent first
func (m *BrowseModel) refresh() {
	entries := m.session.History().Entries()
	m.entries = make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		m.entries = append(m.entries, entries[i])
	}
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// FinalDir returns the directory selected with Jump, or "" when the
// browser was quit without jumping
func (m *BrowseModel) FinalDir() string {
	return m.finalDir
}

// Init implements tea.Model
func (m *BrowseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *BrowseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.GotoTop):
		m.cursor = 0

	case key.Matches(msg, m.keys.GotoBottom):
		if len(m.entries) > 0 {
			m.cursor = len(m.entries) - 1
		}

	case key.Matches(msg, m.keys.Jump):
		return m.jump()

	case key.Matches(msg, m.keys.ToggleVerbose):
		if m.session.ToggleVerbose() {
			m.status = "verbose reporting on"
		} else {
			m.status = "verbose reporting off"
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// jump walks the history back to the entry under the cursor. Entry 0 is
// one step back, entry 1 two steps, and so on; every entry passed on
// the way is consumed, exactly as repeated back commands would.
func (m *BrowseModel) jump() (tea.Model, tea.Cmd) {
	if len(m.entries) == 0 {
		return m, nil
	}

	steps := m.cursor + 1
	ctx := context.Background()

	var dir string
	var err error
	for i := 0; i < steps; i++ {
		dir, err = m.session.GoBack(ctx)
		if err != nil {
			break
		}
	}

	if err != nil {
		m.errMsg = err.Error()
		m.refresh()
		return m, nil
	}

	m.finalDir = dir
	return m, tea.Quit
}

// View implements tea.Model
func (m *BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("directory history"))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(EmptyStyle.Render("history is empty"))
		b.WriteString("\n")
	}

	for i, entry := range m.entries {
		index := IndexStyle.Render(fmt.Sprintf("%2d", i+1))
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("%s %s\n", index, SelectedStyle.Render("❯ "+entry)))
		} else {
			b.WriteString(fmt.Sprintf("%s %s\n", index, EntryStyle.Render("  "+entry)))
		}
	}

	b.WriteString("\n")
	switch {
	case m.errMsg != "":
		b.WriteString(ErrorStyle.Render(m.errMsg))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(StatusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}
