// Package cmd defines the detsync command tree.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/blueteamops/detsync/cmd/detsync/app"
)

// NewRootCommand creates the root cobra command with all subcommands.
func NewRootCommand(a *app.App) *cobra.Command {
	cfg := a.Config()

	rootCmd := &cobra.Command{
		Use:     "detsync",
		Short:   "Detection catalog sync",
		Version: a.Version(),
		Long: `Detsync reconciles the local detection snapshot against the
detections board: it fetches every board item, maps each one into a
canonical record, diffs the result against the persisted snapshot, and
writes back a sorted snapshot plus a change report.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			a.RefreshLogger()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "config file (default is $HOME/.detsync.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "verbose output (shortcut for debug logging)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "minimal output (shortcut for warn logging)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Format, "format", "o", cfg.Format, "output format: table, json, yaml")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("detsync {{.Version}}\n")

	rootCmd.AddCommand(
		newSyncCommand(a),
		newDiffCommand(a),
		newListCommand(a),
		newVersionCommand(a),
	)

	return rootCmd
}
