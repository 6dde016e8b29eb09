package queries

import (
	"errors"
	"strings"

	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	ErrAuthorizeQueryIsNotConstructed = errors.New(
		"AuthorizeQuery must be created via NewAuthorizeQuery constructor",
	)

	// ErrMissingToken is returned when no bearer token was presented.
	ErrMissingToken = errs.NewNotAuthenticatedError("missing token")
)

// AuthorizeQuery resolves a bearer token into claims and checks the
// bearer's role against an operation policy.
type AuthorizeQuery struct {
	token   string
	allowed user.RoleSet

	guard guard.ConstructorGuard
}

func NewAuthorizeQuery(token string, allowed user.RoleSet) (AuthorizeQuery, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return AuthorizeQuery{}, ErrMissingToken
	}
	return AuthorizeQuery{token: token, allowed: allowed, guard: guard.NewConstructorGuard()}, nil
}

func (q AuthorizeQuery) Validate() error {
	return q.guard.Validate(ErrAuthorizeQueryIsNotConstructed)
}

func (q AuthorizeQuery) Token() string { return q.token }

func (q AuthorizeQuery) Allowed() user.RoleSet { return q.allowed }
