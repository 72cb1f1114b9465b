package services

import (
	"inkwell/internal/models"
	"inkwell/internal/security"
	"inkwell/internal/utils"
)

type UserStore interface {
	Save(user *models.User) error
}

// MinPasswordLength applies to registration and password changes alike.
const MinPasswordLength = 6

type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// Register creates a new account with a hashed password, the base role
// and publishing rights.
func (s *UserService) Register(email, password string) (*models.User, error) {
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:      email,
		Password:   hash,
		Roles:      []models.Role{models.RoleUser},
		CanPublish: true,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword has two paths. Admin-initiated (asAdmin) sets the new
// hash unconditionally. Self-initiated verifies the old password first
// and returns ErrWrongPassword, leaving the stored hash untouched, on
// a mismatch.
func (s *UserService) ChangePassword(asAdmin bool, user *models.User, newPassword, oldPassword string) error {
	if user == nil {
		return ErrMissingInput
	}
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	if !asAdmin && !utils.CheckPasswordHash(oldPassword, user.Password) {
		return ErrWrongPassword
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hash
	return s.store.Save(user)
}

func (s *UserService) ChangeEmail(user *models.User, email string) error {
	if user == nil {
		return ErrMissingInput
	}
	user.Email = email
	if err := user.Validate(); err != nil {
		return err
	}
	return s.store.Save(user)
}

// AssignRole replaces the subject's role set with the given role,
// subject to the principal's assignment tier. The base role stays
// implicit.
func (s *UserService) AssignRole(principal, subject *models.User, role models.Role) error {
	if subject == nil {
		return ErrMissingInput
	}
	if !security.CanAssignRole(principal, role) {
		return ErrForbidden
	}

	if role == models.RoleUser {
		subject.Roles = []models.Role{}
	} else {
		subject.Roles = []models.Role{role}
	}
	return s.store.Save(subject)
}

// SetBlocked toggles the subject's publishing rights. Only a
// strictly higher-ranked admin may do this.
func (s *UserService) SetBlocked(principal, subject *models.User, blocked bool) error {
	if subject == nil {
		return ErrMissingInput
	}
	if !security.CanBlockUser(principal, subject) {
		return ErrForbidden
	}

	subject.CanPublish = !blocked
	return s.store.Save(subject)
}
