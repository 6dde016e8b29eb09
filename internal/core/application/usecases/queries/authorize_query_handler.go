package queries

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

var (
	ErrTokenExpired = errs.NewNotAuthenticatedError("token expired")
	ErrTokenRevoked = errs.NewNotAuthenticatedError("token revoked")
)

// AuthorizeQueryHandler authenticates and authorizes a request.
// Authentication failures are errs.ErrNotAuthenticated; a valid token whose
// role is outside the policy is errs.ErrForbidden.
type AuthorizeQueryHandler struct {
	issuer   ports.TokenIssuer
	sessions ports.SessionStore
	clock    kernel.Clock
}

func NewAuthorizeQueryHandler(issuer ports.TokenIssuer, sessions ports.SessionStore, clock kernel.Clock) AuthorizeQueryHandler {
	return AuthorizeQueryHandler{issuer: issuer, sessions: sessions, clock: clock}
}

func (h AuthorizeQueryHandler) Handle(ctx context.Context, query AuthorizeQuery) (session.Claims, error) {
	if err := query.Validate(); err != nil {
		return session.Claims{}, err
	}

	claims, err := h.issuer.Parse(query.Token())
	if err != nil {
		return session.Claims{}, err
	}

	now := h.clock.Now()
	if !now.Before(claims.ExpiresAt) {
		return session.Claims{}, ErrTokenExpired
	}

	revoked, err := h.sessions.IsTokenRevoked(ctx, claims.TokenID, now)
	if err != nil {
		return session.Claims{}, err
	}
	if revoked {
		return session.Claims{}, ErrTokenRevoked
	}

	if !query.Allowed().Allows(claims.Role) {
		return session.Claims{}, errs.NewForbiddenError("role " + claims.Role.String() + " is not allowed")
	}

	return claims, nil
}
