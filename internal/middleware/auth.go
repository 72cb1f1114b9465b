package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

const CheckUserKey = "user"

// CurrentUser returns the user loaded for this request, or nil for an
// anonymous one.
func CurrentUser(c *gin.Context) *models.User {
	if u, exists := c.Get(CheckUserKey); exists {
		if user, ok := u.(*models.User); ok {
			return user
		}
	}
	return nil
}

// LoadUser resolves the session's user_id to a user and sets it on the
// context for downstream handlers.
func LoadUser(users *repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")

		if userID != nil {
			if id, ok := userID.(uint); ok {
				if user, err := users.FindByID(id); err == nil {
					c.Set(CheckUserKey, user)
				}
			}
		}
		c.Next()
	}
}

// AuthRequired ensures a user is logged in.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired ensures the logged-in user holds an admin-level role.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
