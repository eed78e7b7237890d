package detections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueteamops/detsync/pkg/errors"
)

func TestMapItemFullRecord(t *testing.T) {
	item := Item{
		ID:   "4821",
		Name: "Suspicious PowerShell Download",
		Fields: []Field{
			{Key: ColumnDetectionID, Text: "DET-0042"},
			{Key: ColumnDescription, Text: "Detects encoded download cradles"},
			{Key: ColumnDefaultStatus, Text: "Active"},
			{Key: ColumnKillChainStage, Text: "Delivery"},
			{Key: ColumnMitreTactic, Text: "Execution"},
			{Key: ColumnMitreTacticID, Text: "TA0002"},
			{Key: ColumnMitreTechnique, Text: "PowerShell"},
			{Key: ColumnMitreTechniqueID, Text: "T1059.001"},
			{Key: ColumnConnector, Text: "Defender"},
			{Key: ColumnTool, Text: "Sentinel"},
		},
	}

	rec, err := MapItem(item)
	require.NoError(t, err)

	assert.Equal(t, "DET-0042", rec.DetectionID)
	assert.Equal(t, "Suspicious PowerShell Download", rec.Name)
	assert.Equal(t, "Detects encoded download cradles", rec.Description)
	assert.Equal(t, "Active", rec.DefaultStatus)
	assert.Equal(t, "Delivery", rec.KillChainStage)
	assert.Equal(t, "Execution", rec.MitreTactic)
	assert.Equal(t, "TA0002", rec.MitreTacticID)
	assert.Equal(t, "PowerShell", rec.MitreTechnique)
	assert.Equal(t, "T1059.001", rec.MitreTechniqueID)
	assert.Equal(t, "Defender", rec.Connector)
	assert.Equal(t, "Sentinel", rec.Tool)
	assert.Empty(t, rec.DateAdded, "mapper must not stamp DateAdded")
}

func TestMapItemIdentityFallback(t *testing.T) {
	rec, err := MapItem(Item{ID: "4821", Name: "No dedicated ID"})
	require.NoError(t, err)
	assert.Equal(t, "4821", rec.DetectionID)

	// Empty dedicated column also falls back to the item identity.
	rec, err = MapItem(Item{
		ID:     "4822",
		Name:   "Blank dedicated ID",
		Fields: []Field{{Key: ColumnDetectionID, Text: ""}},
	})
	require.NoError(t, err)
	assert.Equal(t, "4822", rec.DetectionID)
}

func TestMapItemMissingColumnsDefaultEmpty(t *testing.T) {
	rec, err := MapItem(Item{ID: "1", Name: "Sparse"})
	require.NoError(t, err)

	assert.Empty(t, rec.Description)
	assert.Empty(t, rec.DefaultStatus)
	assert.Empty(t, rec.KillChainStage)
	assert.Empty(t, rec.MitreTactic)
	assert.Empty(t, rec.Tool)
}

func TestMapItemRejectsAnonymousItem(t *testing.T) {
	_, err := MapItem(Item{})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestMapItemsSkipsRejected(t *testing.T) {
	items := []Item{
		{ID: "1", Name: "Keep"},
		{}, // rejected: no name, no identity
		{ID: "2", Name: "Also keep"},
	}

	records, rejected := MapItems(items)
	require.Len(t, records, 2)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, "Keep", records[0].Name)
	assert.Equal(t, "Also keep", records[1].Name)
}
