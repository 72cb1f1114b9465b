package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/services"
)

type CategoryHandler struct {
	categories      *repository.CategoryRepo
	articles        *repository.ArticleRepo
	categoryService *services.CategoryService
}

func NewCategoryHandler(
	categories *repository.CategoryRepo,
	articles *repository.ArticleRepo,
	categoryService *services.CategoryService,
) *CategoryHandler {
	return &CategoryHandler{
		categories:      categories,
		articles:        articles,
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) Index(c *gin.Context) {
	categories, err := h.categoryService.List()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load categories")
		return
	}
	Render(c, http.StatusOK, "category/list.html", gin.H{
		"Title":      "Categories",
		"Categories": categories,
	})
}

// Show lists a category's published articles, paginated.
func (h *CategoryHandler) Show(c *gin.Context) {
	category, err := h.categories.FindByName(c.Param("name"))
	if err != nil {
		RenderError(c, http.StatusNotFound, "Category not found")
		return
	}

	page := pageParam(c)
	articles, total, err := h.articles.ByCategory(category.ID, page)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load articles")
		return
	}

	Render(c, http.StatusOK, "category/show.html", gin.H{
		"Title":       category.Name,
		"Category":    category,
		"Articles":    articles,
		"CurrentPage": page,
		"TotalPages":  totalPages(total),
	})
}

func (h *CategoryHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "category/create.html", gin.H{"Title": "New category"})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	category := &models.Category{Name: c.PostForm("name")}
	if err := h.categoryService.Save(category); err != nil {
		Render(c, http.StatusBadRequest, "category/create.html", gin.H{
			"Error":    "The category could not be saved",
			"Category": category,
		})
		return
	}
	c.Redirect(http.StatusFound, "/categories")
}

func (h *CategoryHandler) ShowEdit(c *gin.Context) {
	category, err := h.findByParam(c)
	if err != nil {
		RenderError(c, http.StatusNotFound, "Category not found")
		return
	}
	Render(c, http.StatusOK, "category/edit.html", gin.H{
		"Title":    "Edit category",
		"Category": category,
	})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	category, err := h.findByParam(c)
	if err != nil {
		RenderError(c, http.StatusNotFound, "Category not found")
		return
	}

	category.Name = c.PostForm("name")
	if err := h.categoryService.Save(category); err != nil {
		Render(c, http.StatusBadRequest, "category/edit.html", gin.H{
			"Error":    "The category could not be saved",
			"Category": category,
		})
		return
	}
	c.Redirect(http.StatusFound, "/categories")
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	category, err := h.findByParam(c)
	if err != nil {
		RenderError(c, http.StatusNotFound, "Category not found")
		return
	}

	if err := h.categoryService.Delete(category); err != nil {
		if errors.Is(err, services.ErrCategoryInUse) {
			RenderError(c, http.StatusConflict, "The category still has articles and cannot be deleted")
			return
		}
		RenderError(c, http.StatusInternalServerError, "The category could not be deleted")
		return
	}
	c.Redirect(http.StatusFound, "/categories")
}

func (h *CategoryHandler) findByParam(c *gin.Context) (*models.Category, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, err
	}
	return h.categories.FindByID(uint(id))
}
