package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"inkwell/internal/repository"
	"inkwell/internal/services"
	"inkwell/internal/utils"
)

type AuthHandler struct {
	users       *repository.UserRepo
	userService *services.UserService
}

func NewAuthHandler(users *repository.UserRepo, userService *services.UserService) *AuthHandler {
	return &AuthHandler{users: users, userService: userService}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.userService.Register(email, password)
	if errors.Is(err, services.ErrPasswordTooShort) {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Error": "Password must be at least 6 characters",
			"Email": email,
		})
		return
	}
	if err != nil {
		Render(c, http.StatusConflict, "auth/register.html", gin.H{
			"Error": "This email cannot be registered",
			"Email": email,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.users.FindByEmail(email)
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Error": "Wrong email or password",
			"Email": email,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}
