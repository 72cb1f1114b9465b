package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/models"
)

type fakeCategoryStore struct {
	categories []models.Category
	counts     map[uint]int64
	deleted    []*models.Category
}

func (s *fakeCategoryStore) Save(c *models.Category) error { return nil }

func (s *fakeCategoryStore) Delete(c *models.Category) error {
	s.deleted = append(s.deleted, c)
	return nil
}

func (s *fakeCategoryStore) FindAll() ([]models.Category, error) {
	return s.categories, nil
}

func (s *fakeCategoryStore) ArticleCount(categoryID uint) (int64, error) {
	return s.counts[categoryID], nil
}

func TestCategoryDeleteBlockedWhileInUse(t *testing.T) {
	store := &fakeCategoryStore{counts: map[uint]int64{1: 3}}
	svc := NewCategoryService(store)

	err := svc.Delete(&models.Category{ID: 1, Name: "Technology"})
	assert.ErrorIs(t, err, ErrCategoryInUse)
	assert.Empty(t, store.deleted)
}

func TestCategoryDeleteEmpty(t *testing.T) {
	store := &fakeCategoryStore{counts: map[uint]int64{}}
	svc := NewCategoryService(store)

	require.NoError(t, svc.Delete(&models.Category{ID: 2, Name: "Drafts"}))
	assert.Len(t, store.deleted, 1)
}

func TestCategorySaveValidates(t *testing.T) {
	svc := NewCategoryService(&fakeCategoryStore{})

	assert.Error(t, svc.Save(&models.Category{Name: "ab"}), "names shorter than 3 are rejected")
	assert.NoError(t, svc.Save(&models.Category{Name: "Culture"}))
	assert.ErrorIs(t, svc.Save(nil), ErrMissingInput)
}
