// Package ports defines the contracts between the parcels core and its
// adapters: repositories, the unit of work, the session store and the
// outbound collaborators (mail, tokens, hashing, events, QR images).
package ports

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/core/domain/services"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user. A duplicated e-mail, document number or
	// verification token is reported as errs.ErrAlreadyExists.
	Add(ctx context.Context, u *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *user.User) error

	// Delete removes a user. A user still referenced by parcels or history
	// entries is reported as errs.ErrAlreadyExists.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get returns the user or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail looks a user up by its normalized e-mail.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// GetByVerificationToken returns the unverified user holding token.
	GetByVerificationToken(ctx context.Context, token string) (*user.User, error)

	// FindConflicts reports which identity fields are already taken.
	FindConflicts(ctx context.Context, email, documentNumber string) (emailTaken, documentTaken bool, err error)

	// GetMessengerCandidates returns every messenger with the number of
	// parcels it currently carries.
	GetMessengerCandidates(ctx context.Context) ([]services.MessengerCandidate, error)
}
