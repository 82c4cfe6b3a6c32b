package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"hopd/internal/nav"
	"hopd/internal/run"
	"hopd/internal/tui"
)

// NewBrowseCmd creates the browse command
func NewBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the directory history interactively",
		Long: `Open the directory history in an interactive browser. Enter jumps to
the selected entry and the final directory is printed on stdout, so a
shell wrapper can follow along:

    hop() { cd "$(hopd browse)"; }

The interface itself draws on stderr, keeping stdout clean for the
wrapper.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := nav.NewSessionFromConfig(cfg, run.NewExecRunner())
			session.SetVerbose(false)

			p := tea.NewProgram(tui.NewBrowse(session), tea.WithOutput(cmd.ErrOrStderr()))
			final, err := p.Run()
			if err != nil {
				return err
			}

			dir := ""
			if m, ok := final.(*tui.BrowseModel); ok {
				dir = m.FinalDir()
			}
			if dir == "" {
				if dir, err = os.Getwd(); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
