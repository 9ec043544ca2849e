package users_enums

type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleMember  UserRole = "member"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleMember:
		return true
	default:
		return false
	}
}

// Rank orders roles by privilege: admin > manager > member.
// Unknown roles rank zero, below every valid role.
func (r UserRole) Rank() int {
	switch r {
	case UserRoleAdmin:
		return 3
	case UserRoleManager:
		return 2
	case UserRoleMember:
		return 1
	default:
		return 0
	}
}
