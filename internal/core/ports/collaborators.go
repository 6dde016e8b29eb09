package ports

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/core/domain/model/user"
)

// Mailer delivers transactional e-mail.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, to, name, link string) error
	SendOneTimeCode(ctx context.Context, to, code string, ttl time.Duration) error
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(hash, password string) bool
}

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	// Issue signs a token for u; temporary tokens get the shorter lifetime.
	Issue(u *user.User, temporary bool, now time.Time) (session.Token, error)

	// Parse verifies signature and expiry and returns the claims. Any
	// failure is reported as errs.ErrNotAuthenticated.
	Parse(token string) (session.Claims, error)
}

// EventPublisher announces committed parcel status changes.
type EventPublisher interface {
	Publish(ctx context.Context, events ...parcel.StatusChanged) error
}

// QRGenerator renders content as a PNG QR image of size×size pixels.
type QRGenerator interface {
	Encode(content string, size int) ([]byte, error)
}
