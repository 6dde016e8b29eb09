package commands

import (
	"errors"
	"strings"

	"parcels/internal/core/domain/model/session"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/guard"
)

var ErrVerifyCodeCommandIsNotConstructed = errors.New(
	"VerifyCodeCommand must be created via NewVerifyCodeCommand constructor",
)

// VerifyCodeCommand redeems a one-time code for a temporary session.
type VerifyCodeCommand struct {
	email string
	code  string

	guard guard.ConstructorGuard
}

func NewVerifyCodeCommand(email, code string) (VerifyCodeCommand, error) {
	email = user.NormalizeEmail(email)
	code = strings.TrimSpace(code)

	if err := errors.Join(user.ValidateEmail(email), session.ValidateCodeFormat(code)); err != nil {
		return VerifyCodeCommand{}, err
	}

	return VerifyCodeCommand{email: email, code: code, guard: guard.NewConstructorGuard()}, nil
}

func (c VerifyCodeCommand) Validate() error {
	return c.guard.Validate(ErrVerifyCodeCommandIsNotConstructed)
}

func (c VerifyCodeCommand) Email() string { return c.email }

func (c VerifyCodeCommand) Code() string { return c.code }
