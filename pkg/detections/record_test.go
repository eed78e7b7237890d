package detections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotEqual(t *testing.T) {
	a := Snapshot{{DetectionID: "D1", Name: "Alpha"}}
	b := Snapshot{{DetectionID: "D1", Name: "Alpha"}}
	c := Snapshot{{DetectionID: "D1", Name: "Alpha", Description: "changed"}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Snapshot{}))
	assert.True(t, Snapshot{}.Equal(Snapshot(nil)), "empty and nil snapshots are equal")
}

func TestSnapshotIndex(t *testing.T) {
	snap := Snapshot{
		{DetectionID: "D1", Name: "Alpha"},
		{DetectionID: "D2", Name: "Beta"},
	}

	index := snap.Index()
	assert.Len(t, index, 2)
	assert.Equal(t, "Beta", index["D2"].Name)
}

func TestSnapshotSortTieBreak(t *testing.T) {
	snap := Snapshot{
		{DetectionID: "D2", Name: "Same"},
		{DetectionID: "D1", Name: "Same"},
	}

	snap.Sort()
	assert.Equal(t, "D1", snap[0].DetectionID, "name ties break on DetectionID")
}
