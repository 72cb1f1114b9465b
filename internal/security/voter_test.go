package security

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inkwell/internal/models"
)

func user(id uint, roles ...models.Role) *models.User {
	return &models.User{ID: id, Roles: roles, CanPublish: true}
}

func TestDecideAnonymous(t *testing.T) {
	article := &models.Article{AuthorID: 1}
	assert.False(t, Decide(View, article, nil))
	assert.False(t, Decide(Edit, article, nil))
	assert.False(t, Decide(Block, &models.User{}, nil))
}

func TestDecideArticleOwnership(t *testing.T) {
	owner := user(1)
	other := user(2)
	article := &models.Article{AuthorID: 1}

	for _, attr := range []Attribute{View, Edit, Delete} {
		assert.True(t, Decide(attr, article, owner), "%s for owner", attr)
		assert.False(t, Decide(attr, article, other), "%s for non-owner", attr)
	}
	assert.False(t, Decide(Block, article, owner), "BLOCK does not apply to articles")
}

func TestDecideCommentOwnership(t *testing.T) {
	comment := &models.Comment{AuthorID: 5}
	assert.True(t, Decide(Delete, comment, user(5)))
	assert.False(t, Decide(Delete, comment, user(6)))
}

func TestDecideUserEdit(t *testing.T) {
	subject := user(3)
	assert.True(t, Decide(Edit, subject, user(3)), "self-service")
	assert.False(t, Decide(Edit, subject, user(4)), "strangers may not edit")
	assert.True(t, Decide(Edit, subject, user(4, models.RoleAdmin)), "admins may edit anyone")
}

func TestDecideUserBlockRequiresHigherRank(t *testing.T) {
	admin := user(1, models.RoleAdmin)
	superAdmin := user(2, models.RoleSuperAdmin)

	assert.True(t, Decide(Block, user(3), admin))
	assert.True(t, Decide(Block, user(3, models.RoleRedactor), admin))
	assert.False(t, Decide(Block, user(3, models.RoleAdmin), admin), "peers cannot block each other")
	assert.False(t, Decide(Block, superAdmin, admin), "superiors cannot be blocked")
	assert.True(t, Decide(Block, user(3, models.RoleAdmin), superAdmin))
	assert.False(t, Decide(Block, user(3), user(4, models.RoleRedactor)), "non-admins never block")
}

func TestCanCreateArticle(t *testing.T) {
	assert.False(t, CanCreateArticle(nil))
	assert.False(t, CanCreateArticle(user(1)), "plain users cannot publish")
	assert.True(t, CanCreateArticle(user(1, models.RoleRedactor)))
	assert.True(t, CanCreateArticle(user(1, models.RoleAdmin)))

	blocked := user(1, models.RoleRedactor)
	blocked.CanPublish = false
	assert.False(t, CanCreateArticle(blocked))
}

func TestCanEditArticle(t *testing.T) {
	article := &models.Article{AuthorID: 1}

	assert.True(t, CanEditArticle(user(1, models.RoleRedactor), article), "owning redactor")
	assert.False(t, CanEditArticle(user(2, models.RoleRedactor), article), "other redactor")
	assert.False(t, CanEditArticle(user(1), article), "owner without redactor role")
	assert.True(t, CanEditArticle(user(9, models.RoleAdmin), article), "admin edits anything")
}

func TestCanDeleteComment(t *testing.T) {
	comment := &models.Comment{AuthorID: 2}
	assert.True(t, CanDeleteComment(user(2), comment), "owner")
	assert.False(t, CanDeleteComment(user(3), comment))
	assert.True(t, CanDeleteComment(user(3, models.RoleAdmin), comment))
}

func TestCanAssignRole(t *testing.T) {
	admin := user(1, models.RoleAdmin)
	superAdmin := user(2, models.RoleSuperAdmin)

	assert.True(t, CanAssignRole(admin, models.RoleUser))
	assert.True(t, CanAssignRole(admin, models.RoleRedactor))
	assert.False(t, CanAssignRole(admin, models.RoleAdmin), "admins cannot mint admins")

	assert.True(t, CanAssignRole(superAdmin, models.RoleAdmin))
	assert.False(t, CanAssignRole(superAdmin, models.RoleSuperAdmin), "super admin is never granted")

	assert.False(t, CanAssignRole(user(3, models.RoleRedactor), models.RoleUser))
	assert.False(t, CanAssignRole(admin, models.Role("ROLE_NOPE")))
	assert.False(t, CanAssignRole(nil, models.RoleUser))
}
