package models

import (
	"time"

	"gorm.io/gorm"

	"inkwell/internal/utils"
)

type Article struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"uniqueIndex;size:255;not null" json:"title" validate:"required,min=3,max=255"`
	Code        string    `gorm:"size:255;index" json:"code"` // URL slug derived from Title
	Body        string    `gorm:"type:text;not null" json:"body" validate:"required,min=3,max=65535"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id" validate:"required"`
	Category    Category  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category" validate:"-"`
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`
	Author      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author" validate:"-"`
	IsPublished bool      `gorm:"default:false;index" json:"is_published"`
	FileName    *string   `gorm:"size:128" json:"file_name"` // stored thumbnail filename, nil when none
	Comments    []Comment `gorm:"constraint:OnDelete:CASCADE;" json:"comments" validate:"-"`
	Tags        []*Tag    `gorm:"many2many:articles_tags;" json:"tags" validate:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Article) TableName() string {
	return "articles"
}

// BeforeSave keeps the slug in step with the title.
func (a *Article) BeforeSave(tx *gorm.DB) error {
	if a.Title != "" {
		a.Code = utils.Slugify(a.Title)
	}
	return nil
}

// AddComment appends a comment and points it back at this article.
func (a *Article) AddComment(c *Comment) {
	for i := range a.Comments {
		if &a.Comments[i] == c || (c.ID != 0 && a.Comments[i].ID == c.ID) {
			return
		}
	}
	c.ArticleID = a.ID
	a.Comments = append(a.Comments, *c)
}

// RemoveComment drops a comment from the collection and clears the
// comment's back-reference, matching the owning-side bookkeeping rule.
func (a *Article) RemoveComment(c *Comment) {
	for i := range a.Comments {
		if sameComment(&a.Comments[i], c) {
			a.Comments = append(a.Comments[:i], a.Comments[i+1:]...)
			if c.ArticleID == a.ID {
				c.ArticleID = 0
			}
			return
		}
	}
}

// AddTag links a tag on both in-memory sides.
func (a *Article) AddTag(t *Tag) {
	for _, existing := range a.Tags {
		if sameTag(existing, t) {
			return
		}
	}
	a.Tags = append(a.Tags, t)
	t.addArticleSide(a)
}

// RemoveTag unlinks a tag on both in-memory sides.
func (a *Article) RemoveTag(t *Tag) {
	for i, existing := range a.Tags {
		if sameTag(existing, t) {
			a.Tags = append(a.Tags[:i], a.Tags[i+1:]...)
			t.removeArticleSide(a)
			return
		}
	}
}

// HasTag reports whether the tag is linked to this article.
func (a *Article) HasTag(t *Tag) bool {
	for _, existing := range a.Tags {
		if sameTag(existing, t) {
			return true
		}
	}
	return false
}

func sameComment(a, b *Comment) bool {
	if a == b {
		return true
	}
	return a.ID != 0 && a.ID == b.ID
}

func sameTag(a, b *Tag) bool {
	if a == b {
		return true
	}
	return a.ID != 0 && a.ID == b.ID
}
