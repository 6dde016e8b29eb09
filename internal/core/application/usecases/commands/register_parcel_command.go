package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrRegisterParcelCommandIsNotConstructed = errors.New(
	"RegisterParcelCommand must be created via NewRegisterParcelCommand constructor",
)

// RegisterParcelCommand registers a shipment. A client always registers for
// itself; staff may register on behalf of an existing client.
type RegisterParcelCommand struct {
	details  parcel.Details
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRegisterParcelCommand(actor session.Claims, details parcel.Details, clientID *kernel.UUID) (RegisterParcelCommand, error) {
	if !user.ParcelCreators.Allows(actor.Role) {
		return RegisterParcelCommand{}, errs.NewForbiddenError("register package")
	}

	owner := actor.UserID
	if clientID != nil {
		if err := clientID.Validate(); err != nil {
			return RegisterParcelCommand{}, errs.NewValueIsInvalidErrorWithCause("client_id", err)
		}
		if actor.Role == user.Client && !clientID.IsEqual(actor.UserID) {
			return RegisterParcelCommand{}, errs.NewForbiddenError("register package for another client")
		}
		owner = *clientID
	}

	if err := owner.Validate(); err != nil {
		return RegisterParcelCommand{}, errs.NewValueIsRequiredErrorWithCause("client_id", err)
	}

	return RegisterParcelCommand{
		details:  details,
		clientID: owner,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterParcelCommand) Validate() error {
	return c.guard.Validate(ErrRegisterParcelCommandIsNotConstructed)
}

func (c RegisterParcelCommand) Details() parcel.Details { return c.details }

func (c RegisterParcelCommand) ClientID() kernel.UUID { return c.clientID }
