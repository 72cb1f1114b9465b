package repository

import (
	"gorm.io/gorm"

	"inkwell/internal/models"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) Save(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *CategoryRepo) Delete(category *models.Category) error {
	return r.db.Delete(category).Error
}

func (r *CategoryRepo) FindByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepo) FindByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepo) FindAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// ArticleCount reports how many articles still reference the category.
func (r *CategoryRepo) ArticleCount(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).
		Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
