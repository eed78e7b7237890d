package detsync

import (
	"context"
	"fmt"

	"github.com/blueteamops/detsync/pkg/detections"
	"github.com/blueteamops/detsync/pkg/logging"
)

// Result summarizes one reconciliation run.
type Result struct {
	Snapshot detections.Snapshot   `json:"snapshot"`
	Changes  *detections.ChangeSet `json:"changes"`
	Fetched  int                   `json:"fetched"`
	Rejected int                   `json:"rejected"`
	Complete bool                  `json:"complete"`
	Saved    bool                  `json:"saved"`
	Notified bool                  `json:"notified"`
	DryRun   bool                  `json:"dryRun"`
}

// HasChanges reports whether the run produced any changes.
func (r *Result) HasChanges() bool {
	return r.Changes != nil && r.Changes.HasChanges()
}

// Summary returns a one-line description of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf("%s (%d detections)", r.Changes.String(), len(r.Snapshot))
}

// Sync performs one reconciliation pass: load the prior snapshot, fetch
// the board, map and reconcile, persist when the snapshot changed, then
// hand the report to the notifier.
//
// Only the returned error is fatal (a failed snapshot write); every other
// failure degrades to a logged warning and a partial result.
func (s *Syncer) Sync(ctx context.Context) (*Result, error) {
	prior := s.store.Load()

	fetch := s.source.ListItems(ctx)
	if !fetch.Complete {
		logging.Warn().
			Int("items", len(fetch.Items)).
			Msg("fetch incomplete, reconciling with partial data")
	}
	if len(fetch.Items) < len(prior) {
		logging.Warn().
			Int("fetched", len(fetch.Items)).
			Int("prior", len(prior)).
			Msg("fetched fewer items than the prior snapshot holds")
	}

	mapped, rejected := detections.MapItems(fetch.Items)
	runDate := s.now().Format(detections.DateLayout)
	next, changes := detections.Reconcile(prior, mapped, runDate)

	result := &Result{
		Snapshot: next,
		Changes:  changes,
		Fetched:  len(fetch.Items),
		Rejected: rejected,
		Complete: fetch.Complete,
		DryRun:   s.dryRun,
	}

	logging.Info().
		Int("fetched", result.Fetched).
		Int("rejected", result.Rejected).
		Str("changes", changes.String()).
		Msg("reconciliation complete")

	if s.dryRun {
		return result, nil
	}

	if next.Equal(prior) {
		logging.Debug().Msg("snapshot unchanged, skipping write")
	} else {
		if err := s.store.Save(next); err != nil {
			return nil, err
		}
		result.Saved = true
	}

	// Notification is best-effort and must never undo the write above.
	if s.notifier != nil && changes.HasChanges() {
		report := detections.FormatReport(changes)
		if err := s.notifier.Notify(ctx, s.subject, report); err != nil {
			logging.Warn().Err(err).Msg("notification delivery failed")
		} else {
			result.Notified = true
		}
	}

	return result, nil
}
