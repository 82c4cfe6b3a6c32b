package cmd

import (
	"github.com/spf13/cobra"

	"hopd/internal/archive"
	"hopd/internal/cli"
	"hopd/internal/run"
)

// NewFormatsCmd creates the formats command
func NewFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported archive formats and tool availability",
		Long: `List every archive format hopd understands, the suffixes that select
it, and the external tools involved. Tools that do not resolve on PATH
are marked missing.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			transcoder := archive.NewFromConfig(cfg, run.NewExecRunner())
			ui := cli.NewWriter(cmd.OutOrStdout(), cfg)
			ui.FormatTable(transcoder.Table().Formats(), transcoder.Availability())
		},
	}
}
