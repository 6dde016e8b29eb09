package commands

import (
	"errors"

	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/guard"
)

var ErrRequestCodeCommandIsNotConstructed = errors.New(
	"RequestCodeCommand must be created via NewRequestCodeCommand constructor",
)

// RequestCodeCommand asks for a one-time code to be sent to an e-mail.
type RequestCodeCommand struct {
	email string

	guard guard.ConstructorGuard
}

func NewRequestCodeCommand(email string) (RequestCodeCommand, error) {
	email = user.NormalizeEmail(email)
	if err := user.ValidateEmail(email); err != nil {
		return RequestCodeCommand{}, err
	}
	return RequestCodeCommand{email: email, guard: guard.NewConstructorGuard()}, nil
}

func (c RequestCodeCommand) Validate() error {
	return c.guard.Validate(ErrRequestCodeCommandIsNotConstructed)
}

func (c RequestCodeCommand) Email() string { return c.email }
