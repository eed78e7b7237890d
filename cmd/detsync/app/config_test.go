package app

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueteamops/detsync/pkg/errors"
)

func loadTestConfig(t *testing.T) *Config {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	config, err := LoadConfig()
	require.NoError(t, err)
	return config
}

func TestLoadConfigDefaults(t *testing.T) {
	config := loadTestConfig(t)

	assert.Equal(t, DefaultSnapshotPath, config.SnapshotPath)
	assert.Equal(t, DefaultPageSize, config.PageSize)
	assert.Equal(t, DefaultPageDelay, config.PageDelay)
	assert.Equal(t, DefaultSubject, config.NotifySubject)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("MONDAY_API_KEY", "env-key")
	t.Setenv("MONDAY_BOARD_ID", "987654")
	t.Setenv("DETSYNC_SNAPSHOT_PATH", "/tmp/detections.json")

	config := loadTestConfig(t)

	assert.Equal(t, "env-key", config.APIKey)
	assert.Equal(t, "987654", config.BoardID)
	assert.Equal(t, "/tmp/detections.json", config.SnapshotPath)
}

func TestValidateSyncRequiresAPIKey(t *testing.T) {
	config := &Config{BoardID: "1"}

	err := config.ValidateSync()
	require.Error(t, err)
	assert.True(t, errors.IsPrecondition(err))
	assert.ErrorIs(t, err, errors.ErrAPIKeyRequired)
}

func TestValidateSyncRequiresBoardID(t *testing.T) {
	config := &Config{APIKey: "key"}

	err := config.ValidateSync()
	require.Error(t, err)
	assert.True(t, errors.IsPrecondition(err))
	assert.ErrorIs(t, err, errors.ErrBoardRequired)
}

func TestValidateSyncPasses(t *testing.T) {
	config := &Config{APIKey: "key", BoardID: "1"}
	assert.NoError(t, config.ValidateSync())
}
