package detections

import (
	"fmt"

	"github.com/blueteamops/detsync/pkg/logging"
)

// ChangeSet is the added/updated/deleted partition computed by one
// reconciliation pass. It is never persisted; the reporter consumes it
// to build the notification body.
type ChangeSet struct {
	Added   []Record
	Updated []Record
	Deleted []Record
}

// HasChanges reports whether the changeset contains any changes.
func (c *ChangeSet) HasChanges() bool {
	return len(c.Added) > 0 || len(c.Updated) > 0 || len(c.Deleted) > 0
}

// Total returns the number of changed records.
func (c *ChangeSet) Total() int {
	return len(c.Added) + len(c.Updated) + len(c.Deleted)
}

// String returns a one-line summary of the changeset.
func (c *ChangeSet) String() string {
	return fmt.Sprintf("%d added, %d updated, %d deleted",
		len(c.Added), len(c.Updated), len(c.Deleted))
}

// drop removes any earlier classification for the given DetectionID so a
// later duplicate in the same batch can take its place.
func (c *ChangeSet) drop(id string) {
	c.Added = dropRecord(c.Added, id)
	c.Updated = dropRecord(c.Updated, id)
}

func dropRecord(records []Record, id string) []Record {
	kept := records[:0]
	for _, rec := range records {
		if rec.DetectionID != id {
			kept = append(kept, rec)
		}
	}
	return kept
}

// Reconcile merges the mapped records against the prior snapshot and
// returns the next snapshot plus the change partition.
//
// Records whose status is StatusAwaitingApproval are skipped entirely:
// they are neither added nor updated, and they do not count as present
// when deletions are computed. A record that flips to that status on a
// later run therefore shows up as a deletion even though it still exists
// upstream; that is deliberate, if debatable, policy.
//
// For pre-existing records the prior DateAdded is carried forward before
// the equality check, so the first-seen date never changes. New records
// are stamped with runDate. Duplicate DetectionIDs within one batch
// resolve last-write-wins and are logged.
func Reconcile(prior Snapshot, mapped []Record, runDate string) (Snapshot, *ChangeSet) {
	priorByID := prior.Index()

	working := make(map[string]Record, len(prior)+len(mapped))
	for _, rec := range prior {
		working[rec.DetectionID] = rec
	}

	changes := &ChangeSet{}
	expected := make(map[string]bool, len(mapped))

	for _, rec := range mapped {
		if rec.DefaultStatus == StatusAwaitingApproval {
			continue
		}

		if expected[rec.DetectionID] {
			logging.Warn().
				Str("detection_id", rec.DetectionID).
				Msg("duplicate detection ID in batch, keeping the later item")
			changes.drop(rec.DetectionID)
		}
		expected[rec.DetectionID] = true

		if prev, ok := priorByID[rec.DetectionID]; ok {
			rec.DateAdded = prev.DateAdded
			if !rec.Equal(prev) {
				changes.Updated = append(changes.Updated, rec)
			}
		} else {
			rec.DateAdded = runDate
			changes.Added = append(changes.Added, rec)
		}
		working[rec.DetectionID] = rec
	}

	// Anything carried in from the prior snapshot that the board no
	// longer reports (or now holds in approval) is a deletion.
	for _, rec := range prior {
		if !expected[rec.DetectionID] {
			changes.Deleted = append(changes.Deleted, rec)
			delete(working, rec.DetectionID)
		}
	}

	next := make(Snapshot, 0, len(working))
	for _, rec := range working {
		next = append(next, rec)
	}
	next.Sort()

	return next, changes
}
