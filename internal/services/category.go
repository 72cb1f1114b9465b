package services

import (
	"inkwell/internal/models"
)

type CategoryStore interface {
	Save(category *models.Category) error
	Delete(category *models.Category) error
	FindAll() ([]models.Category, error)
	ArticleCount(categoryID uint) (int64, error)
}

type CategoryService struct {
	store CategoryStore
}

func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) List() ([]models.Category, error) {
	return s.store.FindAll()
}

func (s *CategoryService) Save(category *models.Category) error {
	if category == nil {
		return ErrMissingInput
	}
	if err := category.Validate(); err != nil {
		return err
	}
	return s.store.Save(category)
}

// Delete refuses to remove a category while articles still reference
// it. The article foreign key is non-nullable, so cascading or
// nullifying would corrupt the model.
func (s *CategoryService) Delete(category *models.Category) error {
	if category == nil {
		return ErrMissingInput
	}

	count, err := s.store.ArticleCount(category.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.store.Delete(category)
}
