package queries

import (
	"errors"

	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery lists users, optionally only those with one role.
type ListUsersQuery struct {
	role *user.Role

	guard guard.ConstructorGuard
}

// NewListUsersQuery accepts an empty role for no filter.
func NewListUsersQuery(role string) (ListUsersQuery, error) {
	q := ListUsersQuery{}
	if role != "" {
		r, err := user.ParseRole(role)
		if err != nil {
			return ListUsersQuery{}, err
		}
		q.role = &r
	}
	q.guard = guard.NewConstructorGuard()
	return q, nil
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

func (q ListUsersQuery) Role() *user.Role { return q.role }
