package commands

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/errs"
)

type EditParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	tariff     parcel.Tariff
	clock      kernel.Clock
}

func NewEditParcelCommandHandler(uowFactory ParcelUoWFactory, tariff parcel.Tariff, clock kernel.Clock) EditParcelCommandHandler {
	return EditParcelCommandHandler{uowFactory: uowFactory, tariff: tariff, clock: clock}
}

func (h EditParcelCommandHandler) Handle(ctx context.Context, cmd EditParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if !user.ParcelEditors.Allows(actor.Role) {
		return nil, errs.NewForbiddenError("edit package")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ParcelRepository()

	p, err := repo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return nil, err
	}

	if actor.Role == user.Client && !p.IsOwnedBy(actor.UserID) {
		return nil, errs.NewForbiddenError("edit another client's package")
	}

	if err = p.Edit(cmd.Changes(), h.tariff, h.clock.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
