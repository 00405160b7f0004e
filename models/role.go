package models

// Role represents user role types
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
	RoleSuperuser Role = "superuser"
)

// Roles lists every valid role, lowest tier first
var Roles = []Role{RoleUser, RoleModerator, RoleAdmin, RoleSuperuser}

// IsValid checks if the role is one of the predefined roles
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin, RoleSuperuser:
		return true
	default:
		return false
	}
}

// Rank returns the tier of the role. Unknown roles rank below user.
// Admin and superuser share a tier for access decisions.
func (r Role) Rank() int {
	switch r {
	case RoleUser:
		return 1
	case RoleModerator:
		return 2
	case RoleAdmin, RoleSuperuser:
		return 3
	default:
		return 0
	}
}

// AtLeast checks if this role meets the minimum required tier
func (r Role) AtLeast(min Role) bool {
	return r.Rank() > 0 && r.Rank() >= min.Rank()
}

// IsAdmin reports admin-tier roles (admin and superuser)
func (r Role) IsAdmin() bool {
	return r.AtLeast(RoleAdmin)
}

// IsModerator reports moderator tier or above
func (r Role) IsModerator() bool {
	return r.AtLeast(RoleModerator)
}
