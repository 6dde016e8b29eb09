package commands

import (
	"errors"

	"parcels/internal/core/domain/model/session"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New("LogoutCommand must be created via NewLogoutCommand constructor")

// LogoutCommand revokes the caller's session token.
type LogoutCommand struct {
	claims session.Claims

	guard guard.ConstructorGuard
}

func NewLogoutCommand(claims session.Claims) (LogoutCommand, error) {
	if claims.TokenID == "" {
		return LogoutCommand{}, errs.NewValueIsRequiredError("token_id")
	}
	return LogoutCommand{claims: claims, guard: guard.NewConstructorGuard()}, nil
}

func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

func (c LogoutCommand) Claims() session.Claims { return c.claims }
