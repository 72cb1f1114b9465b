package handlers

import (
	"math"

	"github.com/gin-gonic/gin"

	"inkwell/internal/middleware"
	"inkwell/internal/repository"
)

// Render injects common variables like the current user before
// rendering a view.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	if user := middleware.CurrentUser(c); user != nil {
		obj["CurrentUser"] = user
	}
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// RenderError renders the shared error page.
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}

// totalPages converts a row count into a page count, never below 1.
func totalPages(total int64) int {
	pages := int(math.Ceil(float64(total) / float64(repository.ArticlesPerPage)))
	if pages == 0 {
		pages = 1
	}
	return pages
}
