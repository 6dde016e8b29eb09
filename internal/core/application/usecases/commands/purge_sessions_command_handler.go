package commands

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/ports"
)

type PurgeSessionsCommandHandler struct {
	sessions ports.SessionStore
	clock    kernel.Clock
}

func NewPurgeSessionsCommandHandler(sessions ports.SessionStore, clock kernel.Clock) PurgeSessionsCommandHandler {
	return PurgeSessionsCommandHandler{sessions: sessions, clock: clock}
}

// Handle returns the number of entries removed.
func (h PurgeSessionsCommandHandler) Handle(ctx context.Context, cmd PurgeSessionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return h.sessions.PurgeExpired(ctx, h.clock.Now())
}
