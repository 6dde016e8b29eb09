package commands

import (
	"errors"
	"strings"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrConfirmEmailCommandIsNotConstructed = errors.New(
	"ConfirmEmailCommand must be created via NewConfirmEmailCommand constructor",
)

// ConfirmEmailCommand redeems the verification token mailed at registration.
type ConfirmEmailCommand struct {
	token string

	guard guard.ConstructorGuard
}

func NewConfirmEmailCommand(token string) (ConfirmEmailCommand, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return ConfirmEmailCommand{}, errs.NewValueIsRequiredError("token")
	}
	return ConfirmEmailCommand{token: token, guard: guard.NewConstructorGuard()}, nil
}

func (c ConfirmEmailCommand) Validate() error {
	return c.guard.Validate(ErrConfirmEmailCommandIsNotConstructed)
}

func (c ConfirmEmailCommand) Token() string { return c.token }
