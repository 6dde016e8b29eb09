package user

import "strings"

// RoleSet is an allowed-role policy. Each protected operation names the
// RoleSet it requires instead of branching on roles inline.
type RoleSet struct {
	roles map[Role]struct{}
}

// NewRoleSet builds a policy admitting the given roles.
func NewRoleSet(roles ...Role) RoleSet {
	set := RoleSet{roles: make(map[Role]struct{}, len(roles))}
	for _, r := range roles {
		set.roles[r] = struct{}{}
	}
	return set
}

// Allows reports whether r satisfies the policy.
func (s RoleSet) Allows(r Role) bool {
	_, ok := s.roles[r]
	return ok
}

func (s RoleSet) String() string {
	codes := make([]string, 0, len(s.roles))
	for _, r := range AllRoles() {
		if s.Allows(r) {
			codes = append(codes, r.String())
		}
	}
	return strings.Join(codes, ",")
}

// Policies used across the service.
var (
	AnyRole        = NewRoleSet(Client, Messenger, Operator, Admin)
	AdminOnly      = NewRoleSet(Admin)
	Staff          = NewRoleSet(Operator, Admin)
	ParcelCreators = NewRoleSet(Client, Operator, Admin)
	ParcelEditors  = NewRoleSet(Client, Operator, Admin)
	StatusUpdaters = NewRoleSet(Messenger, Operator, Admin)
	Scanners       = NewRoleSet(Messenger)
)
