package queries

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery reads a user profile. Users may read themselves; staff may
// read anyone.
type GetUserQuery struct {
	actor  session.Claims
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetUserQuery(actor session.Claims, userID kernel.UUID) (GetUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserQuery{}, err
	}
	return GetUserQuery{actor: actor, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// NewGetCurrentUserQuery reads the actor's own profile.
func NewGetCurrentUserQuery(actor session.Claims) (GetUserQuery, error) {
	return NewGetUserQuery(actor, actor.UserID)
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) Actor() session.Claims { return q.actor }

func (q GetUserQuery) UserID() kernel.UUID { return q.userID }
