package commands

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/errs"
)

type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
	clock      kernel.Clock
}

func NewUpdateUserCommandHandler(uowFactory UserUoWFactory, clock kernel.Clock) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	isAdmin := actor.Role == user.Admin
	if !isAdmin && !actor.UserID.IsEqual(cmd.UserID()) {
		return nil, errs.NewForbiddenError("edit another user")
	}
	if cmd.Role() != nil && !isAdmin {
		return nil, errs.NewForbiddenError("change role")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()

	u, err := repo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	u.UpdateProfile(cmd.Changes(), now)
	if role := cmd.Role(); role != nil {
		if err = u.ChangeRole(*role, now); err != nil {
			return nil, err
		}
	}

	if err = repo.Update(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
