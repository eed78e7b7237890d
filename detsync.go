// Package detsync reconciles a local detection snapshot against a remote
// detections board and reports what changed.
//
// One run flows fetch -> map -> reconcile -> persist -> notify. The fetch
// tolerates partial pagination, the snapshot write is skipped when nothing
// changed, and notification failures never affect the persisted state.
package detsync

import (
	"context"
	"time"

	"github.com/blueteamops/detsync/internal/notify"
	"github.com/blueteamops/detsync/pkg/detections"
)

// Source is a paginated supplier of board items. Implementations absorb
// transport failures and return whatever was retrieved.
type Source interface {
	ListItems(ctx context.Context) *detections.FetchResult
}

// Syncer runs reconciliation passes against a single snapshot store.
// Concurrent runs against the same store are not supported; the caller
// serializes invocations.
type Syncer struct {
	source   Source
	store    *detections.Store
	notifier notify.Notifier
	subject  string
	dryRun   bool
	now      func() time.Time
}

// New creates a Syncer for the given source and store.
func New(source Source, store *detections.Store, opts ...Option) *Syncer {
	s := &Syncer{
		source:  source,
		store:   store,
		subject: "Detection catalog updated",
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
