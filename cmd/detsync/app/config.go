package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/blueteamops/detsync/pkg/errors"
)

// Defaults applied when neither flags, env, nor config file say otherwise.
const (
	DefaultSnapshotPath = "detections.json"
	DefaultPageSize     = 100
	DefaultPageDelay    = 500 * time.Millisecond
	DefaultSubject      = "Detection catalog updated"
)

// Config holds the application configuration loaded from flags,
// environment variables, .env files, and the config file.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	Format  string

	// Config file
	ConfigFile string

	// Board access
	APIKey    string
	BoardID   string
	Endpoint  string
	PageSize  int
	PageDelay time.Duration

	// Snapshot storage
	SnapshotPath string

	// Notification
	NotifySubject string
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	SMTPFrom      string
	SMTPTo        []string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// command-line flags (applied later by cobra), environment variables,
// .env files, the config file (~/.detsync.yaml), then defaults.
func LoadConfig() (*Config, error) {
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	bindBoardAccess()

	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".detsync")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		Format:  viper.GetString("format"),

		ConfigFile: viper.ConfigFileUsed(),

		APIKey:    viper.GetString("monday.api_key"),
		BoardID:   viper.GetString("monday.board_id"),
		Endpoint:  viper.GetString("monday.endpoint"),
		PageSize:  viper.GetInt("monday.page_size"),
		PageDelay: viper.GetDuration("monday.page_delay"),

		SnapshotPath: viper.GetString("snapshot.path"),

		NotifySubject: viper.GetString("notify.subject"),
		SMTPHost:      viper.GetString("notify.smtp_host"),
		SMTPPort:      viper.GetInt("notify.smtp_port"),
		SMTPUsername:  viper.GetString("notify.smtp_username"),
		SMTPPassword:  viper.GetString("notify.smtp_password"),
		SMTPFrom:      viper.GetString("notify.smtp_from"),
		SMTPTo:        viper.GetStringSlice("notify.smtp_to"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if config.SnapshotPath == "" {
		config.SnapshotPath = DefaultSnapshotPath
	}
	if config.PageSize == 0 {
		config.PageSize = DefaultPageSize
	}
	if config.PageDelay == 0 {
		config.PageDelay = DefaultPageDelay
	}
	if config.NotifySubject == "" {
		config.NotifySubject = DefaultSubject
	}

	return config, nil
}

// ValidateSync checks the mandatory preconditions for talking to the
// board. Failures here abort the run before any fetch attempt.
func (c *Config) ValidateSync() error {
	if c.APIKey == "" {
		return &errors.ConfigError{
			Component: "monday",
			Message:   "MONDAY_API_KEY is not set",
			Err:       errors.ErrAPIKeyRequired,
		}
	}
	if c.BoardID == "" {
		return &errors.ConfigError{
			Component: "monday",
			Message:   "MONDAY_BOARD_ID is not set",
			Err:       errors.ErrBoardRequired,
		}
	}
	return nil
}

// loadEnvFiles loads .env files from the current directory if present.
func loadEnvFiles() {
	for _, file := range []string{".env.local", ".env"} {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}
}

// bindBoardAccess maps the well-known environment variables onto viper
// keys so MONDAY_API_KEY works without a config file.
func bindBoardAccess() {
	_ = viper.BindEnv("monday.api_key", "MONDAY_API_KEY")
	_ = viper.BindEnv("monday.board_id", "MONDAY_BOARD_ID")
	_ = viper.BindEnv("monday.endpoint", "MONDAY_ENDPOINT")
	_ = viper.BindEnv("snapshot.path", "DETSYNC_SNAPSHOT_PATH")
}

// getEnvOrDefault returns the env value or a default when unset.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
