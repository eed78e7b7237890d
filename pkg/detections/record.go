// Package detections defines the canonical detection record model and the
// reconciliation logic that keeps the local snapshot in step with the
// remote detections board.
package detections

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DateLayout is the day-month-year layout used for DateAdded stamps.
const DateLayout = "02-01-06"

// StatusAwaitingApproval marks detections that have not cleared review yet.
// Records carrying this status are excluded from the snapshot entirely.
const StatusAwaitingApproval = "Awaiting Approval"

// Record is the canonical, persisted form of one detection. Every field
// defaults to the empty string rather than null so the snapshot diff
// remains stable across serialization round trips.
type Record struct {
	DetectionID      string `json:"detectionID"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	DefaultStatus    string `json:"defaultStatus"`
	KillChainStage   string `json:"killChainStage"`
	MitreTactic      string `json:"mitreTactic"`
	MitreTacticID    string `json:"mitreTacticID"`
	MitreTechnique   string `json:"mitreTechnique"`
	MitreTechniqueID string `json:"mitreTechniqueID"`
	Connector        string `json:"connector"`
	Tool             string `json:"tool"`
	DateAdded        string `json:"dateAdded"`
}

// Equal reports whether two records are structurally identical.
func (r Record) Equal(other Record) bool {
	return r == other
}

// Snapshot is the full set of detection records at a point in time,
// sorted ascending by name.
type Snapshot []Record

// Equal reports whether two snapshots hold the same records in the
// same order.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Index returns the snapshot's records keyed by DetectionID.
func (s Snapshot) Index() map[string]Record {
	index := make(map[string]Record, len(s))
	for _, rec := range s {
		index[rec.DetectionID] = rec
	}
	return index
}

// Sort orders the snapshot ascending by name using English collation,
// breaking name ties by DetectionID so the ordering is deterministic.
func (s Snapshot) Sort() {
	c := collate.New(language.English)
	sort.SliceStable(s, func(i, j int) bool {
		if cmp := c.CompareString(s[i].Name, s[j].Name); cmp != 0 {
			return cmp < 0
		}
		return s[i].DetectionID < s[j].DetectionID
	})
}
