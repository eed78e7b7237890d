// Package notify delivers change reports to a best-effort sink. Delivery
// failures never roll back the snapshot write, which always happens first.
package notify

import (
	"context"

	"github.com/blueteamops/detsync/pkg/logging"
)

// Notifier accepts a formatted change report for delivery.
type Notifier interface {
	Notify(ctx context.Context, subject, body string) error
}

// LogNotifier writes the report to the application log. It is the default
// sink when no mail settings are configured.
type LogNotifier struct{}

// Notify implements the Notifier interface for LogNotifier.
func (LogNotifier) Notify(_ context.Context, subject, body string) error {
	logging.Info().
		Str("subject", subject).
		Msg(body)
	return nil
}
