package models

// Role is one of the closed set of permission tiers a user can hold.
type Role string

const (
	RoleUser       Role = "ROLE_USER"
	RoleRedactor   Role = "ROLE_REDACTOR"
	RoleAdmin      Role = "ROLE_ADMIN"
	RoleSuperAdmin Role = "ROLE_SUPER_ADMIN"
)

// roleRanks orders the tiers so "strictly higher rank" checks are
// unambiguous. USER < REDACTOR < ADMIN < SUPER_ADMIN.
var roleRanks = map[Role]int{
	RoleUser:       0,
	RoleRedactor:   1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// Rank returns the numeric tier of a role. Unknown roles rank lowest.
func (r Role) Rank() int {
	return roleRanks[r]
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}
