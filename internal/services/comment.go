package services

import (
	"inkwell/internal/models"
)

type CommentStore interface {
	Save(comment *models.Comment) error
	Delete(comment *models.Comment) error
}

type CommentService struct {
	store CommentStore
}

func NewCommentService(store CommentStore) *CommentService {
	return &CommentService{store: store}
}

// Save stamps the author and parent article on the comment and
// persists it. All three arguments are required; a nil one is a
// programming error and fails with ErrMissingInput instead of being
// swallowed.
func (s *CommentService) Save(comment *models.Comment, article *models.Article, user *models.User) error {
	if comment == nil || article == nil || user == nil {
		return ErrMissingInput
	}

	comment.AuthorID = user.ID
	comment.Author = *user
	comment.ArticleID = article.ID

	if err := comment.Validate(); err != nil {
		return err
	}
	return s.store.Save(comment)
}

func (s *CommentService) Delete(comment *models.Comment) error {
	if comment == nil {
		return ErrMissingInput
	}
	return s.store.Delete(comment)
}
