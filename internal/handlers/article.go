package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/security"
	"inkwell/internal/services"
	"inkwell/internal/utils"
)

type ArticleHandler struct {
	articles       *repository.ArticleRepo
	comments       *repository.CommentRepo
	categories     *repository.CategoryRepo
	articleService *services.ArticleService
	tagTransformer *services.TagTransformer
}

func NewArticleHandler(
	articles *repository.ArticleRepo,
	comments *repository.CommentRepo,
	categories *repository.CategoryRepo,
	articleService *services.ArticleService,
	tagTransformer *services.TagTransformer,
) *ArticleHandler {
	return &ArticleHandler{
		articles:       articles,
		comments:       comments,
		categories:     categories,
		articleService: articleService,
		tagTransformer: tagTransformer,
	}
}

func pageParam(c *gin.Context) int {
	page := 1
	if p := c.Query("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	return page
}

// Index lists published articles, newest first.
func (h *ArticleHandler) Index(c *gin.Context) {
	page := pageParam(c)

	cacheKey := fmt.Sprintf("article:list:page:%d", page)
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if data, ok := cached.(gin.H); ok {
			Render(c, http.StatusOK, "article/list.html", data)
			return
		}
	}

	articles, total, err := h.articles.Published(page)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load articles")
		return
	}

	categories, _ := h.categories.FindAll()

	data := gin.H{
		"Articles":    articles,
		"Categories":  categories,
		"Title":       "Latest articles",
		"CurrentPage": page,
		"TotalPages":  totalPages(total),
	}
	utils.GetCache().Set(cacheKey, data, 1*time.Minute)

	Render(c, http.StatusOK, "article/list.html", data)
}

// Show displays one article by slug, with its rendered body and
// comments. Unpublished articles are visible only to whoever may edit
// them.
func (h *ArticleHandler) Show(c *gin.Context) {
	article, err := h.articles.FindByCode(c.Param("code"))
	if err != nil {
		RenderError(c, http.StatusNotFound, "Article not found")
		return
	}

	user := middleware.CurrentUser(c)
	if !article.IsPublished && !security.CanEditArticle(user, article) {
		RenderError(c, http.StatusNotFound, "Article not found")
		return
	}

	comments, _ := h.comments.ByArticle(article.ID)

	type renderedComment struct {
		models.Comment
		BodyHTML interface{}
	}
	rendered := make([]renderedComment, len(comments))
	for i, com := range comments {
		rendered[i] = renderedComment{Comment: com, BodyHTML: utils.RenderMarkdown(com.Body)}
	}

	Render(c, http.StatusOK, "article/show.html", gin.H{
		"Article":   article,
		"Body":      utils.RenderMarkdown(article.Body),
		"Comments":  rendered,
		"Tags":      article.Tags,
		"Title":     article.Title,
		"CanEdit":   security.CanEditArticle(user, article),
		"CanDelete": security.CanDeleteArticle(user, article),
	})
}

func (h *ArticleHandler) ShowCreate(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if !security.CanCreateArticle(user) {
		RenderError(c, http.StatusForbidden, "You are not allowed to publish articles")
		return
	}

	categories, _ := h.categories.FindAll()
	Render(c, http.StatusOK, "article/create.html", gin.H{
		"Title":      "New article",
		"Categories": categories,
	})
}

func (h *ArticleHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if !security.CanCreateArticle(user) {
		RenderError(c, http.StatusForbidden, "You are not allowed to publish articles")
		return
	}

	article := &models.Article{
		Title:       c.PostForm("title"),
		Body:        c.PostForm("body"),
		IsPublished: c.PostForm("is_published") == "on",
	}
	if id, err := strconv.Atoi(c.PostForm("category_id")); err == nil {
		article.CategoryID = uint(id)
	}

	tags, err := h.tagTransformer.FromDisplayString(c.PostForm("tags"))
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not resolve tags")
		return
	}
	article.Tags = tags

	if err := h.articleService.Save(article, user); err != nil {
		categories, _ := h.categories.FindAll()
		Render(c, http.StatusBadRequest, "article/create.html", gin.H{
			"Error":      "The article could not be saved",
			"Article":    article,
			"Categories": categories,
		})
		return
	}
	h.invalidateListCache()

	// Thumbnail is optional on creation, but a failed store must not
	// pass silently
	if file, header, err := c.Request.FormFile("thumbnail"); err == nil {
		defer file.Close()
		if err := h.articleService.SetThumbnail(article, file, header); err != nil {
			log.Printf("Failed to store thumbnail for article %d: %v", article.ID, err)
			RenderError(c, http.StatusInternalServerError, "The article was saved but its thumbnail could not be stored")
			return
		}
	}

	c.Redirect(http.StatusFound, "/a/"+article.Code)
}

func (h *ArticleHandler) ShowEdit(c *gin.Context) {
	article, err := h.articles.FindByCode(c.Param("code"))
	if err != nil {
		RenderError(c, http.StatusNotFound, "Article not found")
		return
	}
	if !security.CanEditArticle(middleware.CurrentUser(c), article) {
		RenderError(c, http.StatusForbidden, "You may not edit this article")
		return
	}

	categories, _ := h.categories.FindAll()
	Render(c, http.StatusOK, "article/edit.html", gin.H{
		"Title":      "Edit article",
		"Article":    article,
		"TagsValue":  h.tagTransformer.ToDisplayString(article.Tags),
		"Categories": categories,
	})
}

func (h *ArticleHandler) Update(c *gin.Context) {
	article, err := h.articles.FindByCode(c.Param("code"))
	if err != nil {
		RenderError(c, http.StatusNotFound, "Article not found")
		return
	}
	if !security.CanEditArticle(middleware.CurrentUser(c), article) {
		RenderError(c, http.StatusForbidden, "You may not edit this article")
		return
	}

	article.Title = c.PostForm("title")
	article.Body = c.PostForm("body")
	article.IsPublished = c.PostForm("is_published") == "on"
	if id, err := strconv.Atoi(c.PostForm("category_id")); err == nil {
		article.CategoryID = uint(id)
	}

	tags, err := h.tagTransformer.FromDisplayString(c.PostForm("tags"))
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not resolve tags")
		return
	}
	article.Tags = tags

	// Edit path: author stays as-is, no acting user is passed
	if err := h.articleService.Save(article, nil); err != nil {
		categories, _ := h.categories.FindAll()
		Render(c, http.StatusBadRequest, "article/edit.html", gin.H{
			"Error":      "The article could not be saved",
			"Article":    article,
			"Categories": categories,
		})
		return
	}

	h.invalidateListCache()
	c.Redirect(http.StatusFound, "/a/"+article.Code)
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	article, err := h.articles.FindByCode(c.Param("code"))
	if err != nil {
		RenderError(c, http.StatusNotFound, "Article not found")
		return
	}
	if !security.CanDeleteArticle(middleware.CurrentUser(c), article) {
		RenderError(c, http.StatusForbidden, "You may not delete this article")
		return
	}

	if err := h.articleService.Delete(article); err != nil {
		RenderError(c, http.StatusInternalServerError, "The article could not be deleted")
		return
	}

	h.invalidateListCache()
	c.Redirect(http.StatusFound, "/")
}

// UploadThumbnail replaces the article's thumbnail.
func (h *ArticleHandler) UploadThumbnail(c *gin.Context) {
	article, err := h.articles.FindByCode(c.Param("code"))
	if err != nil {
		RenderError(c, http.StatusNotFound, "Article not found")
		return
	}
	if !security.CanEditArticle(middleware.CurrentUser(c), article) {
		RenderError(c, http.StatusForbidden, "You may not edit this article")
		return
	}

	file, header, err := c.Request.FormFile("thumbnail")
	if err != nil {
		RenderError(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	if err := h.articleService.SetThumbnail(article, file, header); err != nil {
		RenderError(c, http.StatusInternalServerError, "The thumbnail could not be stored")
		return
	}

	c.Redirect(http.StatusFound, "/a/"+article.Code)
}

func (h *ArticleHandler) DeleteThumbnail(c *gin.Context) {
	article, err := h.articles.FindByCode(c.Param("code"))
	if err != nil {
		RenderError(c, http.StatusNotFound, "Article not found")
		return
	}
	if !security.CanEditArticle(middleware.CurrentUser(c), article) {
		RenderError(c, http.StatusForbidden, "You may not edit this article")
		return
	}

	if err := h.articleService.DeleteThumbnail(article); err != nil {
		RenderError(c, http.StatusInternalServerError, "The thumbnail could not be removed")
		return
	}

	c.Redirect(http.StatusFound, "/a/"+article.Code)
}

func (h *ArticleHandler) invalidateListCache() {
	utils.GetCache().DeletePrefix("article:list:page:")
}
