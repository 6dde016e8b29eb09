package queries

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery reads one parcel the actor is allowed to see. It also
// backs the history and QR lookups, which share the same visibility rule.
type GetParcelQuery struct {
	actor    session.Claims
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetParcelQuery(actor session.Claims, parcelID kernel.UUID) (GetParcelQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelQuery{}, err
	}
	return GetParcelQuery{actor: actor, parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

func (q GetParcelQuery) Actor() session.Claims { return q.actor }

func (q GetParcelQuery) ParcelID() kernel.UUID { return q.parcelID }
