package commands

import (
	"context"

	"parcels/internal/core/ports"
)

// LogoutCommandHandler blacklists the token id until the token would have
// expired anyway.
type LogoutCommandHandler struct {
	sessions ports.SessionStore
}

func NewLogoutCommandHandler(sessions ports.SessionStore) LogoutCommandHandler {
	return LogoutCommandHandler{sessions: sessions}
}

func (h LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	claims := cmd.Claims()
	return h.sessions.RevokeToken(ctx, claims.TokenID, claims.ExpiresAt)
}
