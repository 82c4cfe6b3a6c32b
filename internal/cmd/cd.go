package cmd

import (
	"github.com/spf13/cobra"

	"hopd/internal/nav"
	"hopd/internal/run"
)

// NewCdCmd creates the cd command
func NewCdCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "cd [directory]",
		Short: "Change directory and describe the destination",
		Long: `Change the working directory, remembering where you came from. With no
argument it goes home. After landing, the destination is described: a
short listing, git status when inside a repository, and any project
descriptor found. Use --quiet (or toggle-cd-verbose) to skip the
report.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}

			session := nav.NewSessionFromConfig(cfg, run.NewExecRunner())
			session.SetOutput(cmd.OutOrStdout())
			if quiet {
				session.SetVerbose(false)
			}

			return session.ChangeDirectory(cmd.Context(), target)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Skip the destination report")

	return cmd
}
