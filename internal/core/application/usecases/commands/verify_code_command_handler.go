package commands

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/core/ports"

	"github.com/google/uuid"
)

// VerifyCodeCommandHandler consumes a one-time code and opens a temporary
// session scoped to the same e-mail for session.TemporarySessionTTL.
type VerifyCodeCommandHandler struct {
	sessions ports.SessionStore
	clock    kernel.Clock
}

func NewVerifyCodeCommandHandler(sessions ports.SessionStore, clock kernel.Clock) VerifyCodeCommandHandler {
	return VerifyCodeCommandHandler{sessions: sessions, clock: clock}
}

func (h VerifyCodeCommandHandler) Handle(ctx context.Context, cmd VerifyCodeCommand) (session.TemporarySession, error) {
	if err := cmd.Validate(); err != nil {
		return session.TemporarySession{}, err
	}

	now := h.clock.Now()

	if err := h.sessions.ConsumeCode(ctx, cmd.Email(), cmd.Code(), now); err != nil {
		return session.TemporarySession{}, err
	}

	s := session.TemporarySession{
		ID:        uuid.NewString(),
		Email:     cmd.Email(),
		ExpiresAt: now.Add(session.TemporarySessionTTL),
	}
	if err := h.sessions.SaveTemporarySession(ctx, s); err != nil {
		return session.TemporarySession{}, err
	}

	return s, nil
}
