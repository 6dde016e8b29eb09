package commands

import (
	"errors"

	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand or NewCreateUserCommand constructor",
)

// RegisterUserCommand creates a user account.
//
// Public sign-up always produces a client that must verify its e-mail.
// Administrators create accounts of any role through NewCreateUserCommand;
// those start verified.
//
//	cmd, err := NewRegisterUserCommand(profile, "s3cret!")
//	if err != nil {
//	    return err // missing fields, malformed e-mail or weak password
//	}
//	result, err := handler.Handle(ctx, cmd)
type RegisterUserCommand struct {
	profile     user.Profile
	password    string
	role        user.Role
	preVerified bool

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand is the public sign-up of a client.
func NewRegisterUserCommand(profile user.Profile, password string) (RegisterUserCommand, error) {
	return newRegisterUserCommand(profile, password, user.Client, false)
}

// NewCreateUserCommand is an administrator creating an account with role.
func NewCreateUserCommand(profile user.Profile, password string, role user.Role) (RegisterUserCommand, error) {
	return newRegisterUserCommand(profile, password, role, true)
}

func newRegisterUserCommand(profile user.Profile, password string, role user.Role, preVerified bool) (RegisterUserCommand, error) {
	validProfile, profileErr := user.NewProfile(profile)

	if err := errors.Join(profileErr, validatePassword("password", password), role.Validate()); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		profile:     validProfile,
		password:    password,
		role:        role,
		preVerified: preVerified,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Profile() user.Profile { return c.profile }

func (c RegisterUserCommand) Password() string { return c.password }

func (c RegisterUserCommand) Role() user.Role { return c.role }

// PreVerified reports whether the account skips e-mail verification.
func (c RegisterUserCommand) PreVerified() bool { return c.preVerified }
