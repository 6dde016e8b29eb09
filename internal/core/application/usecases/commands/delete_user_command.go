package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	ErrDeleteUserCommandIsNotConstructed = errors.New(
		"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
	)

	// ErrCannotDeleteSelf stops an administrator from removing its own account.
	ErrCannotDeleteSelf = errs.NewValueIsInvalidErrorWithCause("id", errors.New("cannot delete your own account"))
)

// DeleteUserCommand removes an account that nothing references.
type DeleteUserCommand struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteUserCommand(actor session.Claims, userID kernel.UUID) (DeleteUserCommand, error) {
	if err := userID.Validate(); err != nil {
		return DeleteUserCommand{}, err
	}
	if actor.UserID.IsEqual(userID) {
		return DeleteUserCommand{}, ErrCannotDeleteSelf
	}
	return DeleteUserCommand{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

func (c DeleteUserCommand) UserID() kernel.UUID { return c.userID }
