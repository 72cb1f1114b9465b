package models

import (
	"time"

	"gorm.io/gorm"

	"inkwell/internal/utils"
)

// Tag names are matched case-insensitively, so "Go" and "go" are the
// same tag even though the column carries no uniqueness constraint.
type Tag struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:64;not null" json:"name" validate:"required,min=3,max=64"`
	Code      string     `gorm:"size:64;index" json:"code"` // URL slug derived from Name
	Articles  []*Article `gorm:"many2many:articles_tags;" json:"articles,omitempty" validate:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Tag) TableName() string {
	return "tags"
}

func (t *Tag) BeforeSave(tx *gorm.DB) error {
	if t.Name != "" {
		t.Code = utils.Slugify(t.Name)
	}
	return nil
}

// AddArticle links an article on both in-memory sides.
func (t *Tag) AddArticle(a *Article) {
	a.AddTag(t)
}

// RemoveArticle unlinks an article on both in-memory sides.
func (t *Tag) RemoveArticle(a *Article) {
	a.RemoveTag(t)
}

// addArticleSide maintains only this tag's collection. Callers go
// through Article.AddTag / Tag.AddArticle so both sides stay in sync.
func (t *Tag) addArticleSide(a *Article) {
	for _, existing := range t.Articles {
		if existing == a || (a.ID != 0 && existing.ID == a.ID) {
			return
		}
	}
	t.Articles = append(t.Articles, a)
}

func (t *Tag) removeArticleSide(a *Article) {
	for i, existing := range t.Articles {
		if existing == a || (a.ID != 0 && existing.ID == a.ID) {
			t.Articles = append(t.Articles[:i], t.Articles[i+1:]...)
			return
		}
	}
}
