package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/pkg/guard"
)

var ErrEditParcelCommandIsNotConstructed = errors.New(
	"EditParcelCommand must be created via NewEditParcelCommand constructor",
)

type EditParcelCommand struct {
	actor    session.Claims
	parcelID kernel.UUID
	changes  parcel.Changes

	guard guard.ConstructorGuard
}

func NewEditParcelCommand(actor session.Claims, parcelID kernel.UUID, changes parcel.Changes) (EditParcelCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return EditParcelCommand{}, err
	}
	return EditParcelCommand{
		actor:    actor,
		parcelID: parcelID,
		changes:  changes,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c EditParcelCommand) Validate() error {
	return c.guard.Validate(ErrEditParcelCommandIsNotConstructed)
}

func (c EditParcelCommand) Actor() session.Claims { return c.actor }

func (c EditParcelCommand) ParcelID() kernel.UUID { return c.parcelID }

func (c EditParcelCommand) Changes() parcel.Changes { return c.changes }
