package cmd

import (
	"github.com/spf13/cobra"

	"hopd/internal/nav"
	"hopd/internal/run"
)

// NewBackCmd creates the back command
func NewBackCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "back",
		Short: "Return to the previously visited directory",
		Long: `Pop the most recent entry off the directory history and change into it.
Every process starts with an empty history, so back is mostly useful
inside "hopd shell", where the trail accumulates across commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := nav.NewSessionFromConfig(cfg, run.NewExecRunner())
			session.SetOutput(cmd.OutOrStdout())
			if quiet {
				session.SetVerbose(false)
			}

			_, err := session.GoBack(cmd.Context())
			return err
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Skip the destination report")

	return cmd
}
