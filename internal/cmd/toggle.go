package cmd

import (
	"github.com/spf13/cobra"

	"hopd/internal/cli"
	"hopd/internal/config"
)

// NewToggleVerboseCmd creates the toggle-cd-verbose command
func NewToggleVerboseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-cd-verbose",
		Short: "Toggle the post-cd report and remember the choice",
		Long: `Flip verbose reporting for directory changes and write the new state
back to the config file, so the choice sticks across invocations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Navigation.Verbose = !cfg.Navigation.Verbose

			path := cfgFile
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			if err := config.SaveConfig(cfg, path); err != nil {
				return err
			}

			ui := cli.NewWriter(cmd.OutOrStdout(), cfg)
			if cfg.Navigation.Verbose {
				ui.Info("cd verbose reporting on")
			} else {
				ui.Info("cd verbose reporting off")
			}
			return nil
		},
	}
}
