package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserAllRoles(t *testing.T) {
	u := &User{}
	assert.Equal(t, []Role{RoleUser}, u.AllRoles(), "the base role is implicit")

	u.Roles = []Role{RoleRedactor, RoleRedactor, RoleUser}
	assert.Equal(t, []Role{RoleRedactor, RoleUser}, u.AllRoles())
}

func TestUserHighestRole(t *testing.T) {
	cases := []struct {
		roles []Role
		want  Role
	}{
		{nil, RoleUser},
		{[]Role{RoleRedactor}, RoleRedactor},
		{[]Role{RoleRedactor, RoleAdmin}, RoleAdmin},
		{[]Role{RoleSuperAdmin, RoleUser}, RoleSuperAdmin},
	}
	for _, tc := range cases {
		u := &User{Roles: tc.roles}
		assert.Equal(t, tc.want, u.HighestRole())
	}
}

func TestRoleRanks(t *testing.T) {
	assert.Less(t, RoleUser.Rank(), RoleRedactor.Rank())
	assert.Less(t, RoleRedactor.Rank(), RoleAdmin.Rank())
	assert.Less(t, RoleAdmin.Rank(), RoleSuperAdmin.Rank())
	assert.False(t, Role("ROLE_NOPE").Valid())
}

func TestUserIsAdmin(t *testing.T) {
	assert.False(t, (&User{Roles: []Role{RoleRedactor}}).IsAdmin())
	assert.True(t, (&User{Roles: []Role{RoleAdmin}}).IsAdmin())
	assert.True(t, (&User{Roles: []Role{RoleSuperAdmin}}).IsAdmin())
}
