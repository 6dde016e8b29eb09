package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/session"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand edits a profile. Users edit themselves; administrators
// edit anyone and may change the role.
type UpdateUserCommand struct {
	actor   session.Claims
	userID  kernel.UUID
	changes user.Profile
	role    *user.Role

	guard guard.ConstructorGuard
}

func NewUpdateUserCommand(actor session.Claims, userID kernel.UUID, changes user.Profile, role *user.Role) (UpdateUserCommand, error) {
	var roleErr error
	if role != nil {
		roleErr = role.Validate()
	}
	if err := errors.Join(userID.Validate(), roleErr); err != nil {
		return UpdateUserCommand{}, err
	}

	return UpdateUserCommand{
		actor:   actor,
		userID:  userID,
		changes: changes,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

func (c UpdateUserCommand) Actor() session.Claims { return c.actor }

func (c UpdateUserCommand) UserID() kernel.UUID { return c.userID }

func (c UpdateUserCommand) Changes() user.Profile { return c.changes }

// Role is the requested new role, or nil.
func (c UpdateUserCommand) Role() *user.Role { return c.role }
