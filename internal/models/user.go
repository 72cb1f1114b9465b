package models

import (
	"time"
)

type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Email      string    `gorm:"uniqueIndex;size:180;not null" json:"email" validate:"required,email"`
	Password   string    `gorm:"not null" json:"-"` // bcrypt hash
	Roles      []Role    `gorm:"serializer:json" json:"roles"`
	CanPublish bool      `gorm:"default:true" json:"can_publish"` // false = blocked from authoring
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	// No DeletedAt, users are never hard-deleted in normal flows
}

func (User) TableName() string {
	return "users"
}

// AllRoles returns the stored roles plus the implicit base role,
// de-duplicated. Every user has at least RoleUser.
func (u *User) AllRoles() []Role {
	roles := make([]Role, 0, len(u.Roles)+1)
	seen := make(map[Role]bool, len(u.Roles)+1)
	for _, r := range u.Roles {
		if !seen[r] {
			seen[r] = true
			roles = append(roles, r)
		}
	}
	if !seen[RoleUser] {
		roles = append(roles, RoleUser)
	}
	return roles
}

// HasRole reports whether the user holds the given role, counting the
// implicit base role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.AllRoles() {
		if r == role {
			return true
		}
	}
	return false
}

// HighestRole returns the user's highest-ranked role.
func (u *User) HighestRole() Role {
	highest := RoleUser
	for _, r := range u.AllRoles() {
		if r.Rank() > highest.Rank() {
			highest = r
		}
	}
	return highest
}

// IsAdmin reports whether the user holds an admin-level role.
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin) || u.HasRole(RoleSuperAdmin)
}
