package user

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User was not created via NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	// ErrEmailAlreadyVerified is returned when verification is requested for a verified account.
	ErrEmailAlreadyVerified = errs.NewValueIsInvalidErrorWithCause("email", errors.New("email is already verified"))
)

// User is the aggregate root for a person using the service.
//
// User follows these invariants:
//   - Has a valid identifier, a valid Profile and a defined Role
//   - Holds a bcrypt password hash, never the plain password
//   - While unverified it carries exactly one verification token;
//     verification clears the token
//
// Fields are private; state changes go through methods that keep the
// invariants and bump updatedAt.
type User struct {
	id                kernel.UUID
	profile           Profile
	role              Role
	passwordHash      string
	emailVerified     bool
	verificationToken string
	createdAt         time.Time
	updatedAt         time.Time

	isConstructed bool
}

// NewUser creates an unverified user holding verificationToken.
//
//	profile, _ := user.NewProfile(user.Profile{...})
//	u, err := user.NewUser(kernel.NewUUID(), profile, user.Client, hash, token, clock.Now())
func NewUser(
	id kernel.UUID,
	profile Profile,
	role Role,
	passwordHash string,
	verificationToken string,
	now time.Time,
) (*User, error) {
	u := &User{
		profile:           profile,
		createdAt:         now,
		updatedAt:         now,
		verificationToken: verificationToken,
		isConstructed:     true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setRole(role),
		u.setPasswordHash(passwordHash),
		required("verification_token", verificationToken),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a persisted user. It skips the profile checks
// applied at registration so that legacy rows still load.
func RestoreUser(
	id kernel.UUID,
	profile Profile,
	role Role,
	passwordHash string,
	emailVerified bool,
	verificationToken string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	u := &User{
		profile:           profile,
		emailVerified:     emailVerified,
		verificationToken: verificationToken,
		passwordHash:      passwordHash,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		isConstructed:     true,
	}

	if err := errors.Join(u.setID(id), u.setRole(role)); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate reports whether the user was built by a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID { return u.id }

func (u *User) Profile() Profile { return u.profile }

func (u *User) Email() string { return u.profile.Email }

func (u *User) Role() Role { return u.role }

func (u *User) PasswordHash() string { return u.passwordHash }

func (u *User) IsEmailVerified() bool { return u.emailVerified }

// VerificationToken returns the pending token, or "" once verified.
func (u *User) VerificationToken() string { return u.verificationToken }

func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// IsDispatchable reports whether the user can be assigned parcels:
// a messenger with a verified e-mail.
func (u *User) IsDispatchable() bool {
	return u.role == Messenger && u.emailVerified
}

// VerifyEmail marks the e-mail verified and clears the token.
func (u *User) VerifyEmail(now time.Time) {
	u.emailVerified = true
	u.verificationToken = ""
	u.updatedAt = now
}

// ReissueVerification replaces the pending token. Verified users have
// nothing to verify.
func (u *User) ReissueVerification(token string, now time.Time) error {
	if u.emailVerified {
		return ErrEmailAlreadyVerified
	}
	if err := required("verification_token", token); err != nil {
		return err
	}
	u.verificationToken = token
	u.updatedAt = now
	return nil
}

// UpdateProfile merges the non-empty fields of changes.
func (u *User) UpdateProfile(changes Profile, now time.Time) {
	u.profile = u.profile.Merge(changes)
	u.updatedAt = now
}

// ChangeRole moves the user to another role.
func (u *User) ChangeRole(role Role, now time.Time) error {
	if err := u.setRole(role); err != nil {
		return err
	}
	u.updatedAt = now
	return nil
}

// ChangePassword stores a new password hash.
func (u *User) ChangePassword(hash string, now time.Time) error {
	if err := u.setPasswordHash(hash); err != nil {
		return err
	}
	u.updatedAt = now
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password_hash")
	}
	u.passwordHash = hash
	return nil
}
