package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrAssignMessengerCommandIsNotConstructed = errors.New(
	"AssignMessengerCommand must be created via NewAssignMessengerCommand or NewAssignAutomaticCommand constructor",
)

// AssignMessengerCommand hands a parcel to a named messenger, or to the
// least loaded eligible one when no messenger is named.
type AssignMessengerCommand struct {
	parcelID    kernel.UUID
	messengerID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignMessengerCommand(parcelID, messengerID kernel.UUID) (AssignMessengerCommand, error) {
	if err := errors.Join(parcelID.Validate(), messengerID.Validate()); err != nil {
		return AssignMessengerCommand{}, err
	}
	return AssignMessengerCommand{
		parcelID:    parcelID,
		messengerID: &messengerID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func NewAssignAutomaticCommand(parcelID kernel.UUID) (AssignMessengerCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return AssignMessengerCommand{}, err
	}
	return AssignMessengerCommand{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (c AssignMessengerCommand) Validate() error {
	return c.guard.Validate(ErrAssignMessengerCommandIsNotConstructed)
}

func (c AssignMessengerCommand) ParcelID() kernel.UUID { return c.parcelID }

// MessengerID is nil for automatic assignment.
func (c AssignMessengerCommand) MessengerID() *kernel.UUID { return c.messengerID }

func (c AssignMessengerCommand) IsAutomatic() bool { return c.messengerID == nil }
