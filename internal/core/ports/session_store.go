package ports

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/session"
)

// SessionStore keeps one-time codes, temporary sessions and revoked token
// ids. Every read treats expired entries as absent, and each per-key
// read-modify-write is atomic.
type SessionStore interface {
	// SaveCode stores code for its e-mail, replacing any pending one.
	SaveCode(ctx context.Context, code session.OneTimeCode) error

	// ConsumeCode checks code for email and deletes it on success. It returns
	// session.ErrCodeNotFound, session.ErrCodeExpired (the entry is cleared)
	// or session.ErrCodeMismatch (the entry is kept).
	ConsumeCode(ctx context.Context, email, code string, now time.Time) error

	SaveTemporarySession(ctx context.Context, s session.TemporarySession) error

	// GetTemporarySession returns errs.ErrObjectNotFound for unknown or expired ids.
	GetTemporarySession(ctx context.Context, id string, now time.Time) (session.TemporarySession, error)

	// RevokeToken blacklists tokenID until expiresAt.
	RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error

	IsTokenRevoked(ctx context.Context, tokenID string, now time.Time) (bool, error)

	// PurgeExpired drops every expired entry and returns how many were removed.
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
}
