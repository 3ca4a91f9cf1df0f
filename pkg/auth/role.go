package auth

import "fmt"

// Role is the closed set of actor roles. Raw role strings are parsed once at
// the boundary; everything past the middleware works with this type.
type Role string

const (
	RoleBorrower  Role = "borrower"
	RoleCollector Role = "collector"
	RoleAdmin     Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleBorrower:
		return RoleBorrower, nil
	case RoleCollector:
		return RoleCollector, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

// CanCollect reports whether the role may confirm, edit or delete payments.
func (r Role) CanCollect() bool {
	return r == RoleCollector || r == RoleAdmin
}
