package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blueteamops/detsync/cmd/detsync/app"
)

// newVersionCommand creates the version command.
func newVersionCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "detsync %s\n", a.Version())
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", a.Commit())
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", a.Date())
		},
	}
}
