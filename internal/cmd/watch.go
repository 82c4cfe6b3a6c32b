package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"hopd/internal/cli"
	"hopd/internal/run"
	"hopd/internal/watch"
	"hopd/pkg/types"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	var (
		extractTo string
		remove    bool
		dryRun    bool
		settle    int
	)

	cmd := &cobra.Command{
		Use:   "watch [directory]...",
		Short: "Watch directories and extract archives as they arrive",
		Long: `Watch directories for new archives and extract each one once its size
has settled, so half-finished downloads are left alone. Directories
come from the config file plus any arguments; with neither, the
current directory is watched. Runs in the foreground until
interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Watch.Directories = append(cfg.Watch.Directories, args...)
			if cmd.Flags().Changed("extract-to") {
				cfg.Watch.ExtractTo = extractTo
			}
			if cmd.Flags().Changed("remove") {
				cfg.Watch.RemoveArchive = remove
			}
			if cmd.Flags().Changed("dry-run") {
				cfg.Watch.DryRun = dryRun
			}
			if cmd.Flags().Changed("settle") {
				cfg.Watch.Settle = settle
			}

			if len(cfg.Watch.Directories) == 0 {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				cfg.Watch.Directories = []string{wd}
			}

			daemon, err := watch.NewDaemon(cfg, run.NewExecRunner())
			if err != nil {
				return err
			}

			ui := cli.NewWriter(cmd.OutOrStdout(), cfg)
			daemon.SetCallback(func(path string, report *types.ExtractionReport, err error) {
				switch {
				case err != nil:
					ui.Error("%s: %v", filepath.Base(path), err)
				case report == nil:
					ui.Info("would extract %s", path)
				default:
					ui.Extraction(report)
				}
			})

			if err := daemon.Start(); err != nil {
				return err
			}
			ui.Info("watching %s", strings.Join(cfg.Watch.Directories, ", "))

			<-cmd.Context().Done()
			daemon.Stop()

			status := daemon.Status()
			ui.Info("stopped after %d extracted, %d failed, %d skipped",
				status.Extracted, status.Failed, status.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&extractTo, "extract-to", "", "Extract into this directory instead of alongside each archive")
	cmd.Flags().BoolVar(&remove, "remove", false, "Delete archives after successful extraction")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report what would be extracted without doing it")
	cmd.Flags().IntVar(&settle, "settle", 0, "Seconds a file must be stable before extraction")

	return cmd
}
