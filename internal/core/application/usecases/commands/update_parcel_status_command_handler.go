package commands

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/errs"
)

// staffOnlyTargets are statuses only operators and administrators may set.
var staffOnlyTargets = map[parcel.Status]struct{}{
	parcel.Registered: {},
	parcel.Cancelled:  {},
}

type UpdateParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
	clock      kernel.Clock
}

func NewUpdateParcelStatusCommandHandler(uowFactory ParcelUoWFactory, clock kernel.Clock) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h UpdateParcelStatusCommandHandler) Handle(ctx context.Context, cmd UpdateParcelStatusCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
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

	if err = authorizeStatusChange(cmd.Actor(), p, cmd.Status()); err != nil {
		return nil, err
	}

	if err = p.ChangeStatus(cmd.Status(), h.clock.Now()); err != nil {
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

func authorizeStatusChange(actor session.Claims, p *parcel.Parcel, next parcel.Status) error {
	if !user.StatusUpdaters.Allows(actor.Role) {
		return errs.NewForbiddenError("update package status")
	}
	if _, ok := staffOnlyTargets[next]; ok && !user.Staff.Allows(actor.Role) {
		return errs.NewForbiddenError("move package to " + next.String())
	}
	if actor.Role == user.Messenger && !p.IsAssignedTo(actor.UserID) {
		return parcel.ErrNotAssignedMessenger
	}
	return nil
}
