package commands

import (
	"context"
	"log/slog"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/core/ports"
)

// RequestCodeCommandHandler issues one-time codes. The code goes out by
// e-mail and to the server log; it is never part of the response. A failed
// e-mail is logged and does not fail the request.
type RequestCodeCommandHandler struct {
	sessions ports.SessionStore
	mailer   ports.Mailer
	clock    kernel.Clock
	ttl      time.Duration
	logger   *slog.Logger
}

func NewRequestCodeCommandHandler(
	sessions ports.SessionStore,
	mailer ports.Mailer,
	clock kernel.Clock,
	ttl time.Duration,
	logger *slog.Logger,
) RequestCodeCommandHandler {
	return RequestCodeCommandHandler{
		sessions: sessions,
		mailer:   mailer,
		clock:    clock,
		ttl:      ttl,
		logger:   logger.With("component", "one_time_code"),
	}
}

// Handle returns the expiry of the stored code.
func (h RequestCodeCommandHandler) Handle(ctx context.Context, cmd RequestCodeCommand) (time.Time, error) {
	if err := cmd.Validate(); err != nil {
		return time.Time{}, err
	}

	code, err := session.NewOneTimeCode(cmd.Email(), h.clock.Now(), h.ttl)
	if err != nil {
		return time.Time{}, err
	}

	if err = h.sessions.SaveCode(ctx, code); err != nil {
		return time.Time{}, err
	}

	h.logger.InfoContext(ctx, "one-time code issued",
		"email", code.Email, "code", code.Code, "expires_at", code.ExpiresAt)

	if err = h.mailer.SendOneTimeCode(ctx, code.Email, code.Code, h.ttl); err != nil {
		h.logger.WarnContext(ctx, "one-time code email not sent", "email", code.Email, "error", err)
	}

	return code.ExpiresAt, nil
}
