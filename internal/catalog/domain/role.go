package domain

import "fmt"

// Role is the closed set of access levels a user can hold. It is stored as
// its string form but compared as a typed value to avoid string drift.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// ParseRole validates s as one of the known roles.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleModerator, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string { return string(r) }

// IsStaffOrAbove reports whether the role carries moderation rights over
// other users' reviews and comments.
func (r Role) IsStaffOrAbove() bool {
	return r == RoleModerator || r == RoleAdmin
}

// IsAdmin reports whether the role grants full administrative rights.
func (r Role) IsAdmin() bool { return r == RoleAdmin }
