package security

import (
	"inkwell/internal/models"
)

// CanCreateArticle: authenticated, not blocked, and at least redactor.
func CanCreateArticle(u *models.User) bool {
	if u == nil || !u.CanPublish {
		return false
	}
	return u.HasRole(models.RoleRedactor) || u.IsAdmin()
}

// CanEditArticle: admin, or a redactor who owns the article.
func CanEditArticle(u *models.User, a *models.Article) bool {
	if u == nil {
		return false
	}
	if u.IsAdmin() {
		return true
	}
	return u.HasRole(models.RoleRedactor) && Decide(Edit, a, u)
}

// CanDeleteArticle: admin, or a redactor who owns the article.
func CanDeleteArticle(u *models.User, a *models.Article) bool {
	if u == nil {
		return false
	}
	if u.IsAdmin() {
		return true
	}
	return u.HasRole(models.RoleRedactor) && Decide(Delete, a, u)
}

// CanComment: any authenticated user who is not blocked.
func CanComment(u *models.User) bool {
	return u != nil && u.CanPublish
}

// CanDeleteComment: admin, or the comment's owner.
func CanDeleteComment(u *models.User, c *models.Comment) bool {
	if u == nil {
		return false
	}
	return u.IsAdmin() || Decide(Delete, c, u)
}

// CanManageCategories: admin only.
func CanManageCategories(u *models.User) bool {
	return u != nil && u.IsAdmin()
}

// CanEditUser: self-service or admin.
func CanEditUser(u, subject *models.User) bool {
	return Decide(Edit, subject, u)
}

// CanBlockUser: admin whose rank strictly exceeds the subject's.
func CanBlockUser(u, subject *models.User) bool {
	return Decide(Block, subject, u)
}

// CanAssignRole implements the role-assignment tiers: an admin may
// grant USER or REDACTOR, a super admin may additionally grant ADMIN.
// Nobody grants SUPER_ADMIN through this path.
func CanAssignRole(u *models.User, role models.Role) bool {
	if u == nil || !role.Valid() {
		return false
	}
	switch {
	case u.HasRole(models.RoleSuperAdmin):
		return role == models.RoleUser || role == models.RoleRedactor || role == models.RoleAdmin
	case u.HasRole(models.RoleAdmin):
		return role == models.RoleUser || role == models.RoleRedactor
	default:
		return false
	}
}
