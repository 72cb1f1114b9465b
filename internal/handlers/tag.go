package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inkwell/internal/repository"
)

type TagHandler struct {
	tags     *repository.TagRepo
	articles *repository.ArticleRepo
}

func NewTagHandler(tags *repository.TagRepo, articles *repository.ArticleRepo) *TagHandler {
	return &TagHandler{tags: tags, articles: articles}
}

// Show lists the published articles carrying a tag.
func (h *TagHandler) Show(c *gin.Context) {
	tag, err := h.tags.FindByCode(c.Param("code"))
	if err != nil {
		RenderError(c, http.StatusNotFound, "Tag not found")
		return
	}

	articles, err := h.articles.ByTag(tag.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load articles")
		return
	}

	Render(c, http.StatusOK, "tag/show.html", gin.H{
		"Title":    tag.Name,
		"Tag":      tag,
		"Articles": articles,
	})
}

// Delete removes a tag. Articles that carried it simply lose the link.
func (h *TagHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	tag, err := h.tags.FindByID(uint(id))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if err := h.tags.Delete(tag); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Redirect(http.StatusFound, "/")
}
