package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrRemoveParcelCommandIsNotConstructed = errors.New(
	"RemoveParcelCommand must be created via NewRemoveParcelCommand constructor",
)

// RemoveParcelCommand hard-deletes a parcel together with its history.
type RemoveParcelCommand struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveParcelCommand(parcelID kernel.UUID) (RemoveParcelCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return RemoveParcelCommand{}, err
	}
	return RemoveParcelCommand{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveParcelCommand) Validate() error {
	return c.guard.Validate(ErrRemoveParcelCommandIsNotConstructed)
}

func (c RemoveParcelCommand) ParcelID() kernel.UUID { return c.parcelID }
