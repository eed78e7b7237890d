// Package main provides the entry point for the detsync CLI tool.
package main

import (
	"os"

	"github.com/blueteamops/detsync/cmd/detsync/app"
	"github.com/blueteamops/detsync/cmd/detsync/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	application, err := app.New(version, commit, date)
	if err != nil {
		app.ExitOnError(err)
	}

	ctx, cancel := app.ContextWithSignals()
	defer cancel()

	rootCmd := cmd.NewRootCommand(application)
	rootCmd.SetArgs(os.Args[1:])

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		app.ExitOnError(err)
	}
}
