package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"inkwell/internal/models"
)

// ArticlesPerPage is the page size for every paginated article listing.
const ArticlesPerPage = 10

type ArticleRepo struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) *ArticleRepo {
	return &ArticleRepo{db: db}
}

// Save upserts the article; a generated key is assigned on first save.
// On updates the tag set is replaced wholesale: GORM's Save only
// inserts new join rows, so stale ones have to be deleted through the
// association explicitly or a removed tag would stay attached.
func (r *ArticleRepo) Save(article *models.Article) error {
	if article.ID != 0 {
		if err := r.db.Model(article).Association("Tags").Replace(article.Tags); err != nil {
			return err
		}
		return r.db.Omit("Tags").Save(article).Error
	}
	return r.db.Save(article).Error
}

// Delete removes the article together with its owned comments and the
// tag join rows. The tags themselves survive.
func (r *ArticleRepo) Delete(article *models.Article) error {
	return r.db.Select(clause.Associations).Delete(article).Error
}

func (r *ArticleRepo) FindByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Category").Preload("Author").Preload("Tags").
		First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepo) FindByCode(code string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Category").Preload("Author").Preload("Tags").
		Where("code = ?", code).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepo) FindAll() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Category").Preload("Author").
		Order("created_at DESC").Find(&articles).Error
	return articles, err
}

// Published returns a page of published articles, newest first, plus
// the total published count.
func (r *ArticleRepo) Published(page int) ([]models.Article, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := r.db.Model(&models.Article{}).
		Where("is_published = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err := r.db.Preload("Category").Preload("Author").Preload("Tags").
		Where("is_published = ?", true).
		Order("created_at DESC").
		Limit(ArticlesPerPage).
		Offset((page - 1) * ArticlesPerPage).
		Find(&articles).Error

	return articles, total, err
}

// ByAuthor returns a page of the user's articles, newest first, plus
// the author's total.
func (r *ArticleRepo) ByAuthor(authorID uint, page int) ([]models.Article, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := r.db.Model(&models.Article{}).
		Where("author_id = ?", authorID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err := r.db.Preload("Category").Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Limit(ArticlesPerPage).
		Offset((page - 1) * ArticlesPerPage).
		Find(&articles).Error

	return articles, total, err
}

// ByCategory returns a page of published articles in a category,
// newest first, plus the category's published total.
func (r *ArticleRepo) ByCategory(categoryID uint, page int) ([]models.Article, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := r.db.Model(&models.Article{}).
		Where("category_id = ? AND is_published = ?", categoryID, true).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err := r.db.Preload("Category").Preload("Author").
		Where("category_id = ? AND is_published = ?", categoryID, true).
		Order("created_at DESC").
		Limit(ArticlesPerPage).
		Offset((page - 1) * ArticlesPerPage).
		Find(&articles).Error

	return articles, total, err
}

// ByTag returns the published articles carrying a tag, newest first.
func (r *ArticleRepo) ByTag(tagID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Category").Preload("Author").
		Joins("JOIN articles_tags ON articles_tags.article_id = articles.id").
		Where("articles_tags.tag_id = ? AND is_published = ?", tagID, true).
		Order("created_at DESC").
		Find(&articles).Error
	return articles, err
}
