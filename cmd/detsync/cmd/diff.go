package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/blueteamops/detsync/cmd/detsync/app"
	"github.com/blueteamops/detsync/internal/cmd/output"
)

// newDiffCommand creates the diff command: a dry-run reconcile that
// prints the change report without touching the snapshot.
func newDiffCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show what sync would change without writing anything",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.Config()
			if err := cfg.ValidateSync(); err != nil {
				return err
			}

			result, err := newSyncer(cfg, true).Sync(cmd.Context())
			if err != nil {
				return err
			}

			format := output.DetectFormat(cfg.Format)
			if format == output.FormatJSON || format == output.FormatYAML {
				return output.NewFormatter(format).Format(os.Stdout, result.Changes)
			}

			printReport(result.Changes)
			return nil
		},
	}
}
