package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/security"
	"inkwell/internal/services"
)

type UserHandler struct {
	users       *repository.UserRepo
	articles    *repository.ArticleRepo
	userService *services.UserService
}

func NewUserHandler(
	users *repository.UserRepo,
	articles *repository.ArticleRepo,
	userService *services.UserService,
) *UserHandler {
	return &UserHandler{users: users, articles: articles, userService: userService}
}

// Index lists all accounts for moderation. Admin only (enforced by the
// route group).
func (h *UserHandler) Index(c *gin.Context) {
	users, err := h.users.FindAll()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load users")
		return
	}
	Render(c, http.StatusOK, "user/list.html", gin.H{
		"Title": "Users",
		"Users": users,
	})
}

// Profile shows a user's page with their articles. Visible to the user
// themself and to admins.
func (h *UserHandler) Profile(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}
	if !security.CanEditUser(middleware.CurrentUser(c), subject) {
		RenderError(c, http.StatusForbidden, "You may not view this profile")
		return
	}

	page := pageParam(c)
	articles, total, err := h.articles.ByAuthor(subject.ID, page)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load articles")
		return
	}

	Render(c, http.StatusOK, "user/profile.html", gin.H{
		"Title":       subject.Email,
		"User":        subject,
		"Articles":    articles,
		"CurrentPage": page,
		"TotalPages":  totalPages(total),
	})
}

func (h *UserHandler) ShowChangeEmail(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}
	if !security.CanEditUser(middleware.CurrentUser(c), subject) {
		RenderError(c, http.StatusForbidden, "You may not edit this account")
		return
	}
	Render(c, http.StatusOK, "user/change_email.html", gin.H{"User": subject})
}

func (h *UserHandler) ChangeEmail(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}
	if !security.CanEditUser(middleware.CurrentUser(c), subject) {
		RenderError(c, http.StatusForbidden, "You may not edit this account")
		return
	}

	if err := h.userService.ChangeEmail(subject, c.PostForm("email")); err != nil {
		Render(c, http.StatusBadRequest, "user/change_email.html", gin.H{
			"Error": "The email could not be changed",
			"User":  subject,
		})
		return
	}
	c.Redirect(http.StatusFound, "/user/profile/"+strconv.Itoa(int(subject.ID)))
}

func (h *UserHandler) ShowChangePassword(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}
	current := middleware.CurrentUser(c)
	if !security.CanEditUser(current, subject) {
		RenderError(c, http.StatusForbidden, "You may not edit this account")
		return
	}
	Render(c, http.StatusOK, "user/change_password.html", gin.H{
		"User":    subject,
		"AsAdmin": current.IsAdmin(),
	})
}

// ChangePassword runs the admin path (no current-password check) for
// admins and the verified self-service path for everyone else. A wrong
// current password is a message, not a server error.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}
	current := middleware.CurrentUser(c)
	if !security.CanEditUser(current, subject) {
		RenderError(c, http.StatusForbidden, "You may not edit this account")
		return
	}

	asAdmin := current.IsAdmin()
	err := h.userService.ChangePassword(asAdmin, subject, c.PostForm("new_password"), c.PostForm("old_password"))
	if errors.Is(err, services.ErrWrongPassword) {
		Render(c, http.StatusOK, "user/change_password.html", gin.H{
			"Error":   "Wrong current password",
			"User":    subject,
			"AsAdmin": asAdmin,
		})
		return
	}
	if errors.Is(err, services.ErrPasswordTooShort) {
		Render(c, http.StatusBadRequest, "user/change_password.html", gin.H{
			"Error":   "Password must be at least 6 characters",
			"User":    subject,
			"AsAdmin": asAdmin,
		})
		return
	}
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "The password could not be changed")
		return
	}

	c.Redirect(http.StatusFound, "/user/profile/"+strconv.Itoa(int(subject.ID)))
}

func (h *UserHandler) ShowBlock(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}
	if !security.CanBlockUser(middleware.CurrentUser(c), subject) {
		RenderError(c, http.StatusForbidden, "You may not block this user")
		return
	}
	Render(c, http.StatusOK, "user/block.html", gin.H{"User": subject})
}

// Block toggles the subject's publishing rights.
func (h *UserHandler) Block(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}
	current := middleware.CurrentUser(c)

	blocked := c.PostForm("blocked") == "on"
	if err := h.userService.SetBlocked(current, subject, blocked); err != nil {
		if errors.Is(err, services.ErrForbidden) {
			RenderError(c, http.StatusForbidden, "You may not block this user")
			return
		}
		RenderError(c, http.StatusInternalServerError, "The user could not be updated")
		return
	}
	c.Redirect(http.StatusFound, "/user/profile/"+strconv.Itoa(int(subject.ID)))
}

// Permissions assigns a role to the subject, within the principal's
// assignment tier.
func (h *UserHandler) Permissions(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}
	current := middleware.CurrentUser(c)

	role := models.Role(c.PostForm("role"))
	if err := h.userService.AssignRole(current, subject, role); err != nil {
		if errors.Is(err, services.ErrForbidden) {
			RenderError(c, http.StatusForbidden, "You may not assign this role")
			return
		}
		RenderError(c, http.StatusInternalServerError, "The role could not be assigned")
		return
	}
	c.Redirect(http.StatusFound, "/user/profile/"+strconv.Itoa(int(subject.ID)))
}

func (h *UserHandler) subject(c *gin.Context) (*models.User, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return nil, false
	}
	subject, err := h.users.FindByID(uint(id))
	if err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return nil, false
	}
	return subject, true
}
