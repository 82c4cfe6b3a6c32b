package cmd

import (
	"github.com/spf13/cobra"

	"hopd/internal/archive"
	"hopd/internal/cli"
	"hopd/internal/run"
)

// NewCompressCmd creates the compress command
func NewCompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compress <archive> <input>...",
		Short: "Create an archive from files and directories",
		Long: `Create an archive whose format is chosen by the output name's suffix.
Every input is checked before any tool runs, and the archive is
produced by a single tool invocation, so a failure never leaves a
half-written file behind.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			transcoder := archive.NewFromConfig(cfg, run.NewExecRunner())

			report, err := transcoder.Compress(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}

			cli.NewWriter(cmd.OutOrStdout(), cfg).Compression(report)
			return nil
		},
	}
}
