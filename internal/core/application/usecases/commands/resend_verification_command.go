package commands

import (
	"errors"

	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/guard"
)

var ErrResendVerificationCommandIsNotConstructed = errors.New(
	"ResendVerificationCommand must be created via NewResendVerificationCommand constructor",
)

// ResendVerificationCommand replaces a pending verification token and mails it again.
type ResendVerificationCommand struct {
	email string

	guard guard.ConstructorGuard
}

func NewResendVerificationCommand(email string) (ResendVerificationCommand, error) {
	email = user.NormalizeEmail(email)
	if err := user.ValidateEmail(email); err != nil {
		return ResendVerificationCommand{}, err
	}
	return ResendVerificationCommand{email: email, guard: guard.NewConstructorGuard()}, nil
}

func (c ResendVerificationCommand) Validate() error {
	return c.guard.Validate(ErrResendVerificationCommandIsNotConstructed)
}

func (c ResendVerificationCommand) Email() string { return c.email }
