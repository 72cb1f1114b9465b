package repository

import (
	"gorm.io/gorm"

	"inkwell/internal/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db: db}
}

func (r *CommentRepo) Save(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

func (r *CommentRepo) Delete(comment *models.Comment) error {
	return r.db.Delete(comment).Error
}

func (r *CommentRepo) FindByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Preload("Author").First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ByArticle returns an article's comments, oldest first.
func (r *CommentRepo) ByArticle(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author").
		Where("article_id = ?", articleID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
