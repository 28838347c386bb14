// Package mail provides Notifier implementations for delivering one-time
// codes to users.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"

	"github.com/rs/zerolog"
)

// Config captures the settings for the outbound SMTP relay. No authentication
// is performed; the relay is expected to be a local or trusted MTA.
type Config struct {
	Host string
	Port int
	From string
}

// SMTPNotifier delivers messages over plain SMTP.
type SMTPNotifier struct {
	cfg    Config
	logger zerolog.Logger
}

func NewSMTPNotifier(cfg Config, logger zerolog.Logger) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, logger: logger}
}

// Send delivers one message. The context is not threaded into net/smtp (the
// package predates context); callers treat failures as non-fatal anyway.
func (n *SMTPNotifier) Send(_ context.Context, to, subject, body string) error {
	addr := net.JoinHostPort(n.cfg.Host, fmt.Sprintf("%d", n.cfg.Port))
	msg := []byte("From: " + n.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	if err := smtp.SendMail(addr, nil, n.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}

	n.logger.Debug().Str("to", to).Str("subject", subject).Msg("mail sent")
	return nil
}

// LogNotifier writes the message to the log instead of delivering it. Used in
// development, where no SMTP relay is running.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(_ context.Context, to, subject, body string) error {
	n.logger.Info().Str("to", to).Str("subject", subject).Str("body", body).Msg("mail (not delivered)")
	return nil
}
