package tui_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"hopd/internal/nav"
	"hopd/internal/run"
	"hopd/internal/tui"
	"hopd/pkg/testutils"

	alsrt "github.com/alecthomas/assert"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// TestBrowserWalkthrough drives one browser model through a whole
// session: listing, cursor travel, toggles, and the final jump.
func TestBrowserWalkthrough(t *testing.T) {
	base := t.TempDir()
	for _, name := range []string{"projects", "downloads"} {
		require.NoError(t, os.Mkdir(filepath.Join(base, name), 0o755))
	}

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(base))
	t.Cleanup(func() { _ = os.Chdir(old) })

	s := nav.NewSession(run.NewFakeRunner())
	s.SetVerbose(false)

	start, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, s.ChangeDirectory(context.Background(), filepath.Join(base, "projects")))
	projects, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, s.ChangeDirectory(context.Background(), filepath.Join(base, "downloads")))

	m := tui.NewBrowse(s)

	t.Run("history listing", func(t *testing.T) {
		view := testutils.StripANSI(m.View())
		alsrt.Contains(t, view, "directory history", "title should be rendered")
		alsrt.Contains(t, view, "❯ "+projects, "cursor should start on the most recent entry")
		alsrt.Contains(t, view, start)
	})

	t.Run("cursor travel", func(t *testing.T) {
		newModel, _ := m.Update(runes("j"))
		m = newModel.(*tui.BrowseModel)
		view := testutils.StripANSI(m.View())
		alsrt.Contains(t, view, "❯ "+start, "j should move the cursor to the older entry")

		newModel, _ = m.Update(runes("g"))
		m = newModel.(*tui.BrowseModel)
		view = testutils.StripANSI(m.View())
		alsrt.Contains(t, view, "❯ "+projects, "g should return the cursor to the top")
	})

	t.Run("verbose toggle", func(t *testing.T) {
		newModel, _ := m.Update(runes("t"))
		m = newModel.(*tui.BrowseModel)
		alsrt.True(t, s.Verbose())
		alsrt.Contains(t, testutils.StripANSI(m.View()), "verbose reporting on")

		newModel, _ = m.Update(runes("t"))
		m = newModel.(*tui.BrowseModel)
		alsrt.False(t, s.Verbose())
	})

	t.Run("help toggle", func(t *testing.T) {
		short := testutils.StripANSI(m.View())

		newModel, _ := m.Update(runes("?"))
		m = newModel.(*tui.BrowseModel)
		full := testutils.StripANSI(m.View())
		alsrt.NotEqual(t, short, full, "full help should expand the footer")
		alsrt.Contains(t, full, "toggle verbose")

		newModel, _ = m.Update(runes("?"))
		m = newModel.(*tui.BrowseModel)
	})

	t.Run("jump", func(t *testing.T) {
		newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = newModel.(*tui.BrowseModel)
		require.NotNil(t, cmd, "jump should quit the program")

		alsrt.Equal(t, projects, m.FinalDir())
		wd, err := os.Getwd()
		require.NoError(t, err)
		alsrt.Equal(t, projects, wd)
		alsrt.Equal(t, 1, s.History().Len(), "one entry consumed")
	})

	t.Run("quit", func(t *testing.T) {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		alsrt.NotNil(t, cmd)
	})
}
