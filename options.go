package detsync

import (
	"time"

	"github.com/blueteamops/detsync/internal/notify"
)

// Option configures a Syncer.
type Option func(*Syncer)

// WithNotifier sets the sink that receives the change report. Without a
// notifier the report is only available on the Result.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Syncer) {
		s.notifier = n
	}
}

// WithSubject sets the subject line used for notifications.
func WithSubject(subject string) Option {
	return func(s *Syncer) {
		if subject != "" {
			s.subject = subject
		}
	}
}

// WithDryRun computes the changeset without persisting or notifying.
func WithDryRun(dryRun bool) Option {
	return func(s *Syncer) {
		s.dryRun = dryRun
	}
}

// WithClock overrides the time source used to stamp new records.
func WithClock(now func() time.Time) Option {
	return func(s *Syncer) {
		if now != nil {
			s.now = now
		}
	}
}
