package notify

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/blueteamops/detsync/pkg/errors"
)

// SMTPConfig holds mail delivery settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
}

// SMTPNotifier sends the change report as a plain-text email.
type SMTPNotifier struct {
	cfg SMTPConfig
}

// NewSMTPNotifier creates a mail notifier from the given settings.
func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &SMTPNotifier{cfg: cfg}
}

// Notify sends the report. net/smtp does not take a context; the server's
// own timeouts bound the call.
func (n *SMTPNotifier) Notify(_ context.Context, subject, body string) error {
	if n.cfg.Host == "" || n.cfg.From == "" || len(n.cfg.To) == 0 {
		return errors.NewConfigError("notify", "SMTP host, from, and to are required", nil)
	}

	addr := net.JoinHostPort(n.cfg.Host, strconv.Itoa(n.cfg.Port))

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(n.cfg.To, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, n.cfg.From, n.cfg.To, []byte(msg.String())); err != nil {
		return fmt.Errorf("send report mail: %w", err)
	}
	return nil
}
