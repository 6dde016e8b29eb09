package commands

import (
	"errors"
	"strings"

	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New("LoginCommand must be created via NewLoginCommand constructor")

// LoginCommand exchanges credentials for a session token. Unverified users
// additionally present the id of a temporary session obtained with a
// one-time code.
type LoginCommand struct {
	email              string
	password           string
	temporarySessionID string

	guard guard.ConstructorGuard
}

func NewLoginCommand(email, password, temporarySessionID string) (LoginCommand, error) {
	email = user.NormalizeEmail(email)

	var emailErr, passwordErr error
	if email == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(emailErr, passwordErr); err != nil {
		return LoginCommand{}, err
	}

	return LoginCommand{
		email:              email,
		password:           password,
		temporarySessionID: strings.TrimSpace(temporarySessionID),
		guard:              guard.NewConstructorGuard(),
	}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Email() string { return c.email }

func (c LoginCommand) Password() string { return c.password }

func (c LoginCommand) TemporarySessionID() string { return c.temporarySessionID }
