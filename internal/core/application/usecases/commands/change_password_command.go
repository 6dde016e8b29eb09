package commands

import (
	"errors"

	"parcels/internal/core/domain/model/session"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrChangePasswordCommandIsNotConstructed = errors.New(
	"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
)

// ChangePasswordCommand replaces the caller's password after checking the current one.
type ChangePasswordCommand struct {
	actor           session.Claims
	currentPassword string
	newPassword     string

	guard guard.ConstructorGuard
}

func NewChangePasswordCommand(actor session.Claims, currentPassword, newPassword string) (ChangePasswordCommand, error) {
	var currentErr error
	if currentPassword == "" {
		currentErr = errs.NewValueIsRequiredError("current_password")
	}
	if err := errors.Join(currentErr, validatePassword("new_password", newPassword), actor.UserID.Validate()); err != nil {
		return ChangePasswordCommand{}, err
	}

	return ChangePasswordCommand{
		actor:           actor,
		currentPassword: currentPassword,
		newPassword:     newPassword,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

func (c ChangePasswordCommand) Actor() session.Claims { return c.actor }

func (c ChangePasswordCommand) CurrentPassword() string { return c.currentPassword }

func (c ChangePasswordCommand) NewPassword() string { return c.newPassword }
