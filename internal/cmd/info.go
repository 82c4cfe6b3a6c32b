package cmd

import (
	"github.com/spf13/cobra"

	"hopd/internal/cli"
	"hopd/internal/run"
	"hopd/pkg/sysinfo"
)

// NewInfoCmd creates the info command
func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show a quick system report",
		Long: `Collect host, kernel, uptime, disk, and memory information from the
usual tools and print whatever was available. Missing tools are simply
skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := sysinfo.Collect(cmd.Context(), run.NewExecRunner())
			cli.NewWriter(cmd.OutOrStdout(), cfg).Sysinfo(report)
			return nil
		},
	}
}
