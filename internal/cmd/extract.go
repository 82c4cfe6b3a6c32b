package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"hopd/internal/archive"
	"hopd/internal/cli"
	"hopd/internal/errors"
	"hopd/internal/run"
	"hopd/pkg/types"
)

// NewExtractCmd creates the extract command
func NewExtractCmd() *cobra.Command {
	var into string

	cmd := &cobra.Command{
		Use:   "extract <archive>...",
		Short: "Extract archives with the right tool for each format",
		Long: `Extract one or more archives, picking the tool from the filename
suffix. Multi-file archives land in a directory named after their
contents (or the archive itself); single-file compressors expand in
place. The working directory is never changed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if into != "" {
				if err := os.MkdirAll(into, 0755); err != nil {
					return errors.Wrap(err, "creating extraction destination")
				}
			}

			transcoder := archive.NewFromConfig(cfg, run.NewExecRunner())
			ui := cli.NewWriter(cmd.OutOrStdout(), cfg)

			for _, path := range args {
				var (
					report *types.ExtractionReport
					err    error
				)
				if into != "" {
					report, err = transcoder.ExtractInto(cmd.Context(), path, into)
				} else {
					report, err = transcoder.Extract(cmd.Context(), path)
				}
				if err != nil {
					return err
				}
				ui.Extraction(report)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&into, "into", "C", "", "Extract into this directory instead of deriving one")

	return cmd
}
