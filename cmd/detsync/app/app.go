// Package app provides configuration, logging, and lifecycle management
// for the detsync CLI. It centralizes the dependencies commands share so
// the command tree stays declarative.
package app

import (
	"github.com/rs/zerolog"

	"github.com/blueteamops/detsync/pkg/errors"
	"github.com/blueteamops/detsync/pkg/logging"
)

// App represents the detsync application with its shared dependencies.
type App struct {
	version string
	commit  string
	date    string

	config *Config
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	a := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	a.config = config

	logger := NewLogger(config)
	a.logger = &logger
	logging.SetDefault(logger)

	return a, nil
}

// Version returns the version string.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// RefreshLogger rebuilds the logger after flag parsing changed the
// logging configuration.
func (a *App) RefreshLogger() {
	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)
}
