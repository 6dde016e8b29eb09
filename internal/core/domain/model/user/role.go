package user

import (
	"fmt"
	"strings"

	"parcels/internal/pkg/errs"
)

// Role is the authorization role of a user.
type Role int

const (
	// UnknownRole catches uninitialized values.
	UnknownRole Role = iota

	// Client registers parcels and follows its own shipments.
	Client

	// Messenger picks up and delivers the parcels assigned to it.
	Messenger

	// Operator approves, assigns and supervises parcels.
	Operator

	// Admin can do everything an operator can and manages users.
	Admin
)

func getRoleCodes() map[Role]string {
	//nolint:exhaustive // UnknownRole has no wire code
	return map[Role]string{
		Client:    "client",
		Messenger: "messenger",
		Operator:  "operator",
		Admin:     "admin",
	}
}

// AllRoles lists the valid roles in declaration order.
func AllRoles() []Role {
	return []Role{Client, Messenger, Operator, Admin}
}

// ParseRole converts a wire code ("client", "messenger", ...) into a Role.
func ParseRole(code string) (Role, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	for r, c := range getRoleCodes() {
		if c == code {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", code))
}

// Validate reports whether r is one of the defined roles.
func (r Role) Validate() error {
	if _, ok := getRoleCodes()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire code, or "unknown".
func (r Role) String() string {
	if c, ok := getRoleCodes()[r]; ok {
		return c
	}
	return "unknown"
}

// IsStaff reports whether the role belongs to back-office personnel.
func (r Role) IsStaff() bool {
	return r == Operator || r == Admin
}
