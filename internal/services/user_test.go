package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/models"
	"inkwell/internal/utils"
)

type fakeUserStore struct {
	saved []*models.User
}

func (s *fakeUserStore) Save(user *models.User) error {
	s.saved = append(s.saved, user)
	return nil
}

func TestRegister(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewUserService(store)

	user, err := svc.Register("alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.True(t, user.CanPublish)
	assert.Equal(t, []models.Role{models.RoleUser}, user.Roles)
	assert.True(t, utils.CheckPasswordHash("secret123", user.Password))
	assert.Len(t, store.saved, 1)
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewUserService(store)

	_, err := svc.Register("not-an-email", "secret123")
	assert.Error(t, err)
	assert.Empty(t, store.saved)
}

func TestChangePasswordSelf(t *testing.T) {
	hash, err := utils.HashPassword("old-pass")
	require.NoError(t, err)
	user := &models.User{ID: 1, Email: "a@b.io", Password: hash}

	store := &fakeUserStore{}
	svc := NewUserService(store)

	require.NoError(t, svc.ChangePassword(false, user, "new-pass", "old-pass"))
	assert.True(t, utils.CheckPasswordHash("new-pass", user.Password))
	assert.Len(t, store.saved, 1)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	hash, err := utils.HashPassword("old-pass")
	require.NoError(t, err)
	user := &models.User{ID: 1, Email: "a@b.io", Password: hash}

	store := &fakeUserStore{}
	svc := NewUserService(store)

	err = svc.ChangePassword(false, user, "new-pass", "guess")
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.Equal(t, hash, user.Password, "hash must stay untouched on failure")
	assert.Empty(t, store.saved)
}

func TestChangePasswordRejectsShortPassword(t *testing.T) {
	hash, err := utils.HashPassword("old-pass")
	require.NoError(t, err)
	user := &models.User{ID: 1, Email: "a@b.io", Password: hash}

	store := &fakeUserStore{}
	svc := NewUserService(store)

	assert.ErrorIs(t, svc.ChangePassword(false, user, "", "old-pass"), ErrPasswordTooShort)
	assert.ErrorIs(t, svc.ChangePassword(true, user, "short", ""), ErrPasswordTooShort)
	assert.Equal(t, hash, user.Password, "hash must stay untouched on failure")
	assert.Empty(t, store.saved)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewUserService(store)

	_, err := svc.Register("alice@example.com", "12345")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
	assert.Empty(t, store.saved)
}

func TestChangePasswordAsAdminSkipsCheck(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@b.io", Password: "whatever"}

	svc := NewUserService(&fakeUserStore{})
	require.NoError(t, svc.ChangePassword(true, user, "reset-pass", ""))
	assert.True(t, utils.CheckPasswordHash("reset-pass", user.Password))
}

func TestAssignRole(t *testing.T) {
	admin := &models.User{ID: 1, Roles: []models.Role{models.RoleAdmin}}
	superAdmin := &models.User{ID: 2, Roles: []models.Role{models.RoleSuperAdmin}}
	subject := &models.User{ID: 3}

	store := &fakeUserStore{}
	svc := NewUserService(store)

	require.NoError(t, svc.AssignRole(admin, subject, models.RoleRedactor))
	assert.Equal(t, []models.Role{models.RoleRedactor}, subject.Roles)

	// admins cannot mint admins
	assert.ErrorIs(t, svc.AssignRole(admin, subject, models.RoleAdmin), ErrForbidden)
	assert.Equal(t, []models.Role{models.RoleRedactor}, subject.Roles)

	require.NoError(t, svc.AssignRole(superAdmin, subject, models.RoleAdmin))
	assert.Equal(t, []models.Role{models.RoleAdmin}, subject.Roles)

	// demotion to the base role leaves it implicit
	require.NoError(t, svc.AssignRole(superAdmin, subject, models.RoleUser))
	assert.Empty(t, subject.Roles)
	assert.True(t, subject.HasRole(models.RoleUser))
}

func TestSetBlocked(t *testing.T) {
	admin := &models.User{ID: 1, Roles: []models.Role{models.RoleAdmin}}
	subject := &models.User{ID: 2, CanPublish: true}

	store := &fakeUserStore{}
	svc := NewUserService(store)

	require.NoError(t, svc.SetBlocked(admin, subject, true))
	assert.False(t, subject.CanPublish)

	require.NoError(t, svc.SetBlocked(admin, subject, false))
	assert.True(t, subject.CanPublish)

	peer := &models.User{ID: 3, Roles: []models.Role{models.RoleAdmin}}
	assert.ErrorIs(t, svc.SetBlocked(admin, peer, true), ErrForbidden)
}
