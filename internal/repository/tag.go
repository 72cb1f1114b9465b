package repository

import (
	"errors"

	"gorm.io/gorm"

	"inkwell/internal/models"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db: db}
}

func (r *TagRepo) Save(tag *models.Tag) error {
	return r.db.Save(tag).Error
}

func (r *TagRepo) Delete(tag *models.Tag) error {
	return r.db.Select("Articles").Delete(tag).Error
}

func (r *TagRepo) FindByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindOneByName matches a tag name case-insensitively. Returns
// (nil, nil) when no tag exists, so callers can create one.
func (r *TagRepo) FindOneByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepo) FindByCode(code string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where("code = ?", code).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepo) FindAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}
