package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/blueteamops/detsync/cmd/detsync/app"
	"github.com/blueteamops/detsync/internal/cmd/output"
	"github.com/blueteamops/detsync/pkg/detections"
)

// newListCommand creates the list command, a read-only view over the
// persisted snapshot.
func newListCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the detections in the persisted snapshot",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := a.Config()
			snapshot := detections.NewStore(cfg.SnapshotPath).Load()

			format := output.DetectFormat(cfg.Format)
			if format == output.FormatJSON || format == output.FormatYAML {
				return output.NewFormatter(format).Format(os.Stdout, snapshot)
			}

			return output.NewFormatter(output.FormatTable).Format(os.Stdout, snapshotTable(snapshot))
		},
	}
}

// snapshotTable shapes the snapshot for table rendering.
func snapshotTable(snapshot detections.Snapshot) output.Data {
	rows := make([][]string, 0, len(snapshot))
	for _, rec := range snapshot {
		rows = append(rows, []string{
			rec.DetectionID,
			rec.Name,
			rec.DefaultStatus,
			rec.KillChainStage,
			rec.MitreTactic,
			rec.MitreTechniqueID,
			rec.Connector,
			rec.Tool,
			rec.DateAdded,
		})
	}
	return output.Data{
		Headers: []string{"ID", "Name", "Status", "Kill Chain", "Tactic", "Technique", "Connector", "Tool", "Added"},
		Rows:    rows,
	}
}
