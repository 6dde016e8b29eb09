package commands

import (
	"context"
)

// DeleteUserCommandHandler hard-deletes a user. The store refuses users
// still referenced by parcels or history entries (errs.ErrAlreadyExists).
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewDeleteUserCommandHandler(uowFactory UserUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{uowFactory: uowFactory}
}

func (h DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
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

	if err := uow.UserRepository().Delete(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
