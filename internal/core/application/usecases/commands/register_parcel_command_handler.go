package commands

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"
)

type RegisterParcelCommandHandler struct {
	uowFactory UoWFactory
	tariff     parcel.Tariff
	prefix     string
	clock      kernel.Clock
}

func NewRegisterParcelCommandHandler(
	uowFactory UoWFactory,
	tariff parcel.Tariff,
	prefix string,
	clock kernel.Clock,
) RegisterParcelCommandHandler {
	return RegisterParcelCommandHandler{
		uowFactory: uowFactory,
		tariff:     tariff,
		prefix:     prefix,
		clock:      clock,
	}
}

func (h RegisterParcelCommandHandler) Handle(ctx context.Context, cmd RegisterParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	code, err := parcel.NewTrackingCode(h.prefix)
	if err != nil {
		return nil, err
	}

	p, err := parcel.NewParcel(kernel.NewUUID(), code, cmd.Details(), cmd.ClientID(), h.tariff, h.clock.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.UserRepository().Get(ctx, cmd.ClientID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("client_id", cmd.ClientID().String(), err)
		}
		return nil, err
	}

	if err = uow.ParcelRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
