// Package cmd assembles the hopd command tree. Each subcommand is a
// one-shot counterpart of a shell builtin, built on the same session,
// transcoder, and UI plumbing.
package cmd

import (
	"github.com/spf13/cobra"

	"hopd/internal/cli"
	"hopd/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// NewRootCmd creates the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hopd",
		Short: "Hop between directories and through archives",
		Long: `
	 _                      _
	| |__    ___   _ __  __| |
	| '_ \  / _ \ | '_ \/ _' |
	| | | || (_) || |_)  (_| |
	|_| |_| \___/ | .__/\__,_|
	              |_|

Hopd keeps a trail of the directories you visit, describes each one as
you land in it, and drives the usual archive tools through a single
consistent interface. Run "hopd shell" for the interactive session
where the directory trail accumulates.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			loadConfig(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/hopd/config.yaml)")

	rootCmd.AddCommand(NewCdCmd())
	rootCmd.AddCommand(NewBackCmd())
	rootCmd.AddCommand(NewToggleVerboseCmd())
	rootCmd.AddCommand(NewExtractCmd())
	rootCmd.AddCommand(NewCompressCmd())
	rootCmd.AddCommand(NewFormatsCmd())
	rootCmd.AddCommand(NewShellCmd())
	rootCmd.AddCommand(NewWatchCmd())
	rootCmd.AddCommand(NewBrowseCmd())
	rootCmd.AddCommand(NewInfoCmd())
	rootCmd.AddCommand(NewCalcCmd())
	rootCmd.AddCommand(NewGenpassCmd())
	rootCmd.AddCommand(NewThemesCmd())

	return rootCmd
}

// loadConfig resolves the configuration before any subcommand runs. A
// broken config file is reported but never fatal; the defaults keep
// every command usable.
func loadConfig(cmd *cobra.Command) {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadConfigFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}

	if err != nil {
		cfg = config.New()
		ui := cli.NewWriter(cmd.ErrOrStderr(), cfg)
		ui.Warning("%v", err)
		ui.Info("continuing with default settings")
	}
}
