package commands

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

// ErrCurrentPasswordMismatch is returned when the current password is wrong.
var ErrCurrentPasswordMismatch = errs.NewValueIsInvalidErrorWithCause(
	"current_password", errors.New("does not match"),
)

type ChangePasswordCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	clock      kernel.Clock
}

func NewChangePasswordCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher, clock kernel.Clock) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{uowFactory: uowFactory, hasher: hasher, clock: clock}
}

func (h ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()

	u, err := repo.Get(ctx, cmd.Actor().UserID)
	if err != nil {
		return err
	}

	if !h.hasher.Matches(u.PasswordHash(), cmd.CurrentPassword()) {
		return ErrCurrentPasswordMismatch
	}

	hash, err := h.hasher.Hash(cmd.NewPassword())
	if err != nil {
		return err
	}

	if err = u.ChangePassword(hash, h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
