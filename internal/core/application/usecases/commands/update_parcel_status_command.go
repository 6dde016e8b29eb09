package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand moves a parcel along the lifecycle on behalf of actor.
type UpdateParcelStatusCommand struct {
	actor    session.Claims
	parcelID kernel.UUID
	status   parcel.Status

	guard guard.ConstructorGuard
}

func NewUpdateParcelStatusCommand(actor session.Claims, parcelID kernel.UUID, status string) (UpdateParcelStatusCommand, error) {
	next, statusErr := parcel.ParseStatus(status)
	if err := errors.Join(parcelID.Validate(), statusErr); err != nil {
		return UpdateParcelStatusCommand{}, err
	}
	return UpdateParcelStatusCommand{
		actor:    actor,
		parcelID: parcelID,
		status:   next,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

func (c UpdateParcelStatusCommand) Actor() session.Claims { return c.actor }

func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID { return c.parcelID }

func (c UpdateParcelStatusCommand) Status() parcel.Status { return c.status }
