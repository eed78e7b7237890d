package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/blueteamops/detsync/pkg/logging"
)

// NewLogger creates a configured logger based on the application
// configuration. Log level precedence (highest to lowest):
//  1. LOG_LEVEL environment variable / --log-level
//  2. -v/--verbose flag (shortcut for debug)
//  3. -q/--quiet flag (shortcut for warn)
//  4. Default (info)
func NewLogger(config *Config) zerolog.Logger {
	logConfig := &logging.Config{
		Level:  determineLogLevel(config),
		Format: config.LogFormat,
		Output: config.LogOutput,
	}
	return logging.NewLoggerFromConfig(logConfig)
}

// determineLogLevel resolves the effective log level from the config.
func determineLogLevel(config *Config) string {
	if config.LogLevel != "" {
		return validateLogLevel(config.LogLevel)
	}

	if config.Verbose && config.Quiet {
		fmt.Fprintf(os.Stderr, "Warning: both --verbose and --quiet specified, using --quiet\n")
		return "warn"
	}
	if config.Verbose {
		return "debug"
	}
	if config.Quiet {
		return "warn"
	}

	return "info"
}

// validateLogLevel returns the level when valid, otherwise "info".
func validateLogLevel(level string) string {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return level
	}
	return "info"
}
