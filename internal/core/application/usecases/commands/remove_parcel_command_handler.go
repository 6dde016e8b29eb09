package commands

import (
	"context"
)

type RemoveParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

func NewRemoveParcelCommandHandler(uowFactory ParcelUoWFactory) RemoveParcelCommandHandler {
	return RemoveParcelCommandHandler{uowFactory: uowFactory}
}

func (h RemoveParcelCommandHandler) Handle(ctx context.Context, cmd RemoveParcelCommand) error {
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

	if err := uow.ParcelRepository().Delete(ctx, cmd.ParcelID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
