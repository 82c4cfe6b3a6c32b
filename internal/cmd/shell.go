package cmd

import (
	"github.com/spf13/cobra"

	"hopd/internal/run"
	"hopd/internal/shell"
)

// NewShellCmd creates the shell command
func NewShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive session",
		Long: `Start an interactive session where the navigation and archive commands
live as builtins and anything else is passed through to the system.
This is where cd and back keep their trail; type help inside the
session for the full command list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return shell.New(cfg, run.NewExecRunner()).Run(cmd.Context())
		},
	}
}
