package cmd

import (
	"github.com/blueteamops/detsync"
	"github.com/blueteamops/detsync/cmd/detsync/app"
	"github.com/blueteamops/detsync/internal/notify"
	"github.com/blueteamops/detsync/internal/sources/monday"
	"github.com/blueteamops/detsync/internal/transport"
	"github.com/blueteamops/detsync/pkg/detections"
)

// newSyncer wires a Syncer from the loaded configuration.
func newSyncer(cfg *app.Config, dryRun bool) *detsync.Syncer {
	tc := transport.New(&transport.TokenAuth{}, cfg.APIKey)

	source := monday.NewClient(monday.Config{
		Endpoint:  cfg.Endpoint,
		BoardID:   cfg.BoardID,
		PageSize:  cfg.PageSize,
		PageDelay: cfg.PageDelay,
	}, tc)

	store := detections.NewStore(cfg.SnapshotPath)

	opts := []detsync.Option{
		detsync.WithDryRun(dryRun),
		detsync.WithSubject(cfg.NotifySubject),
		detsync.WithNotifier(newNotifier(cfg)),
	}

	return detsync.New(source, store, opts...)
}

// newNotifier picks the notification sink: SMTP when mail settings are
// present, otherwise the report goes to the log.
func newNotifier(cfg *app.Config) notify.Notifier {
	if cfg.SMTPHost != "" {
		return notify.NewSMTPNotifier(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			To:       cfg.SMTPTo,
		})
	}
	return notify.LogNotifier{}
}
