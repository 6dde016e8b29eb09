package commands

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
)

type ReviewParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	clock      kernel.Clock
}

// NewReviewParcelCommandHandler approves or rejects parcels. The resulting
// status change is announced by the unit of work on commit.
func NewReviewParcelCommandHandler(uowFactory ParcelUoWFactory, clock kernel.Clock) ReviewParcelCommandHandler {
	return ReviewParcelCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h ReviewParcelCommandHandler) Handle(ctx context.Context, cmd ReviewParcelCommand) (*parcel.Parcel, error) {
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

	now := h.clock.Now()
	if cmd.IsApproval() {
		err = p.Approve(now)
	} else {
		err = p.Reject(now)
	}
	if err != nil {
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
