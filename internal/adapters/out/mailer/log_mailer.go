package mailer

import (
	"context"
	"log/slog"
	"time"
)

// LogMailer writes outgoing messages to the log. It stands in for SendGrid
// in development.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger.With("component", "LogMailer")}
}

func (m *LogMailer) SendVerificationEmail(ctx context.Context, to, name, link string) error {
	m.logger.InfoContext(ctx, "verification e-mail", "to", to, "name", name, "link", link)
	return nil
}

func (m *LogMailer) SendOneTimeCode(ctx context.Context, to, code string, ttl time.Duration) error {
	m.logger.InfoContext(ctx, "one-time code", "to", to, "code", code, "ttl", ttl)
	return nil
}
