package models

import (
	"time"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Body      string    `gorm:"type:text;not null" json:"body" validate:"required"`
	ArticleID uint      `gorm:"not null;index" json:"article_id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author" validate:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (Comment) TableName() string {
	return "comment"
}
