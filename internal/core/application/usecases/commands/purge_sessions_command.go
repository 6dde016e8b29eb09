package commands

import (
	"errors"

	"parcels/internal/pkg/guard"
)

var ErrPurgeSessionsCommandIsNotConstructed = errors.New(
	"PurgeSessionsCommand must be created via NewPurgeSessionsCommand constructor",
)

// PurgeSessionsCommand drops expired codes, temporary sessions and revocations.
type PurgeSessionsCommand struct {
	guard guard.ConstructorGuard
}

func NewPurgeSessionsCommand() (PurgeSessionsCommand, error) {
	return PurgeSessionsCommand{guard: guard.NewConstructorGuard()}, nil
}

func (c PurgeSessionsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeSessionsCommandIsNotConstructed)
}
