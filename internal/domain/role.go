package domain

import (
	"fmt"
	"strconv"
)

// Role is the closed set of account tiers. Values are stable and stored
// as plain integers in the users table.
type Role int

const (
	RoleViewer     Role = 1
	RoleModerator  Role = 2
	RoleAdmin      Role = 3
	RoleSuperAdmin Role = 4
)

// ParseRole parses a submitted role value. Empty or non-numeric input
// falls back to RoleViewer; a number outside the closed range is an
// error. This is the only place the range is validated — registration
// goes through here, nothing else assigns roles.
func ParseRole(s string) (Role, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return RoleViewer, nil
	}
	r := Role(n)
	if r < RoleViewer || r > RoleSuperAdmin {
		return 0, fmt.Errorf("role %d out of range", n)
	}
	return r, nil
}

func (r Role) Valid() bool { return r >= RoleViewer && r <= RoleSuperAdmin }

func (r Role) String() string {
	switch r {
	case RoleViewer:
		return "viewer"
	case RoleModerator:
		return "moderator"
	case RoleAdmin:
		return "admin"
	case RoleSuperAdmin:
		return "superadmin"
	}
	return "unknown"
}
