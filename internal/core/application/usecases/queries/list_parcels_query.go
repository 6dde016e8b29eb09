package queries

import (
	"errors"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/pkg/guard"
)

var ErrListParcelsQueryIsNotConstructed = errors.New(
	"ListParcelsQuery must be created via NewListParcelsQuery constructor",
)

// ListParcelsQuery lists the parcels visible to actor, optionally filtered
// by status. Staff listings follow the lifecycle order, then newest first;
// everyone else gets newest first.
type ListParcelsQuery struct {
	actor  session.Claims
	status *parcel.Status

	guard guard.ConstructorGuard
}

// NewListParcelsQuery accepts an empty status for no filter.
func NewListParcelsQuery(actor session.Claims, status string) (ListParcelsQuery, error) {
	q := ListParcelsQuery{actor: actor}
	if status != "" {
		s, err := parcel.ParseStatus(status)
		if err != nil {
			return ListParcelsQuery{}, err
		}
		q.status = &s
	}
	q.guard = guard.NewConstructorGuard()
	return q, nil
}

func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

func (q ListParcelsQuery) Actor() session.Claims { return q.actor }

func (q ListParcelsQuery) Status() *parcel.Status { return q.status }
