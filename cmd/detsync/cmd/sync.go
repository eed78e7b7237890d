package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blueteamops/detsync"
	"github.com/blueteamops/detsync/cmd/detsync/app"
	"github.com/blueteamops/detsync/internal/cmd/output"
	"github.com/blueteamops/detsync/pkg/detections"
)

// newSyncCommand creates the sync command.
func newSyncCommand(a *app.App) *cobra.Command {
	var dryRun bool

	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Reconcile the local snapshot against the detections board",
		Long: `Sync fetches every item from the detections board, maps each into a
canonical record, reconciles against the persisted snapshot, writes the
updated snapshot when anything changed, and delivers a change report to
the configured notification sink.

Missing MONDAY_API_KEY or MONDAY_BOARD_ID aborts before any fetch.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.Config()
			if err := cfg.ValidateSync(); err != nil {
				return err
			}

			result, err := newSyncer(cfg, dryRun).Sync(cmd.Context())
			if err != nil {
				return err
			}

			format := output.DetectFormat(cfg.Format)
			if format == output.FormatJSON || format == output.FormatYAML {
				return output.NewFormatter(format).Format(os.Stdout, result)
			}

			if !cfg.Quiet {
				printRunSummary(result, dryRun)
			}
			if result.HasChanges() {
				printReport(result.Changes)
			}
			return nil
		},
	}

	syncCmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute changes without writing the snapshot or notifying")

	return syncCmd
}

// printRunSummary writes the human-readable outcome of a run to stderr.
func printRunSummary(result *detsync.Result, dryRun bool) {
	if !result.HasChanges() {
		fmt.Fprintf(os.Stderr, "Snapshot up to date - no changes\n")
		return
	}
	if dryRun {
		fmt.Fprintf(os.Stderr, "Dry run - snapshot not written\n")
	}
	fmt.Fprintf(os.Stderr, "%s\n", result.Summary())
}

// printReport writes the change report for human consumption.
func printReport(changes *detections.ChangeSet) {
	fmt.Fprint(os.Stdout, detections.FormatReport(changes))
}
