package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/security"
	"inkwell/internal/services"
)

type CommentHandler struct {
	articles       *repository.ArticleRepo
	comments       *repository.CommentRepo
	commentService *services.CommentService
}

func NewCommentHandler(
	articles *repository.ArticleRepo,
	comments *repository.CommentRepo,
	commentService *services.CommentService,
) *CommentHandler {
	return &CommentHandler{
		articles:       articles,
		comments:       comments,
		commentService: commentService,
	}
}

func (h *CommentHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if !security.CanComment(user) {
		RenderError(c, http.StatusForbidden, "You are not allowed to comment")
		return
	}

	article, err := h.articles.FindByCode(c.Param("code"))
	if err != nil {
		RenderError(c, http.StatusNotFound, "Article not found")
		return
	}

	comment := &models.Comment{Body: c.PostForm("body")}
	if err := h.commentService.Save(comment, article, user); err != nil {
		RenderError(c, http.StatusBadRequest, "The comment could not be saved")
		return
	}

	c.Redirect(http.StatusFound, "/a/"+article.Code)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	comment, err := h.comments.FindByID(uint(id))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if !security.CanDeleteComment(middleware.CurrentUser(c), comment) {
		c.Status(http.StatusForbidden)
		return
	}

	article, err := h.articles.FindByID(comment.ArticleID)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if err := h.commentService.Delete(comment); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusFound, "/a/"+article.Code)
}
