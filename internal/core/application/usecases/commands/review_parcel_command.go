package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrReviewParcelCommandIsNotConstructed = errors.New(
	"ReviewParcelCommand must be created via NewApproveParcelCommand or NewRejectParcelCommand constructor",
)

// ReviewParcelCommand is an operator's decision on a registered parcel.
type ReviewParcelCommand struct {
	parcelID kernel.UUID
	approve  bool

	guard guard.ConstructorGuard
}

func NewApproveParcelCommand(parcelID kernel.UUID) (ReviewParcelCommand, error) {
	return newReviewParcelCommand(parcelID, true)
}

func NewRejectParcelCommand(parcelID kernel.UUID) (ReviewParcelCommand, error) {
	return newReviewParcelCommand(parcelID, false)
}

func newReviewParcelCommand(parcelID kernel.UUID, approve bool) (ReviewParcelCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return ReviewParcelCommand{}, err
	}
	return ReviewParcelCommand{
		parcelID: parcelID,
		approve:  approve,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ReviewParcelCommand) Validate() error {
	return c.guard.Validate(ErrReviewParcelCommandIsNotConstructed)
}

func (c ReviewParcelCommand) ParcelID() kernel.UUID { return c.parcelID }

func (c ReviewParcelCommand) IsApproval() bool { return c.approve }
