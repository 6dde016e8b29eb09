package queries

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/pkg/guard"
)

var ErrGetParcelHistoryQueryIsNotConstructed = errors.New(
	"GetParcelHistoryQuery must be created via NewGetParcelHistoryQuery constructor",
)

type GetParcelHistoryQuery struct {
	actor    session.Claims
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetParcelHistoryQuery(actor session.Claims, parcelID kernel.UUID) (GetParcelHistoryQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelHistoryQuery{}, err
	}
	return GetParcelHistoryQuery{actor: actor, parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetParcelHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelHistoryQueryIsNotConstructed)
}

func (q GetParcelHistoryQuery) Actor() session.Claims { return q.actor }

func (q GetParcelHistoryQuery) ParcelID() kernel.UUID { return q.parcelID }

// HistoryEntryResponse is one scan record with the messenger name resolved.
type HistoryEntryResponse struct {
	ID            kernel.UUID
	Status        parcel.Status
	Location      string
	Notes         string
	MessengerID   *kernel.UUID
	MessengerName string
	CreatedAt     time.Time
}
