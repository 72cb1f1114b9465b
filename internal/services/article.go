package services

import (
	"mime/multipart"
	"sync"

	"inkwell/internal/models"
)

// ArticleStore is the slice of the article repository the service needs.
type ArticleStore interface {
	Save(article *models.Article) error
	Delete(article *models.Article) error
}

// ArticleService orchestrates article persistence with author stamping
// and thumbnail file management.
type ArticleService struct {
	store    ArticleStore
	uploader *FileUploader

	mu         sync.Mutex
	thumbLocks map[uint]*sync.Mutex
}

func NewArticleService(store ArticleStore, uploader *FileUploader) *ArticleService {
	return &ArticleService{
		store:      store,
		uploader:   uploader,
		thumbLocks: make(map[uint]*sync.Mutex),
	}
}

// Save validates and persists the article. When an acting user is
// supplied it is stamped as the author; edit paths pass nil and leave
// the author untouched.
func (s *ArticleService) Save(article *models.Article, actingUser *models.User) error {
	if article == nil {
		return ErrMissingInput
	}
	if actingUser != nil {
		article.AuthorID = actingUser.ID
		article.Author = *actingUser
	}
	if article.AuthorID == 0 {
		return ErrMissingInput
	}
	if err := article.Validate(); err != nil {
		return err
	}
	return s.store.Save(article)
}

// Delete removes the stored thumbnail file, then the article together
// with its owned comments.
func (s *ArticleService) Delete(article *models.Article) error {
	if article == nil {
		return ErrMissingInput
	}

	lock := s.thumbLock(article.ID)
	lock.Lock()
	defer lock.Unlock()

	if article.FileName != nil {
		if err := s.uploader.Remove(*article.FileName); err != nil {
			return err
		}
	}
	return s.store.Delete(article)
}

// SetThumbnail stores a new thumbnail with replace semantics: the old
// file is removed from disk before the new filename is recorded.
func (s *ArticleService) SetThumbnail(article *models.Article, file multipart.File, header *multipart.FileHeader) error {
	if article == nil || file == nil || header == nil {
		return ErrMissingInput
	}

	lock := s.thumbLock(article.ID)
	lock.Lock()
	defer lock.Unlock()

	if article.FileName != nil {
		if err := s.uploader.Remove(*article.FileName); err != nil {
			return err
		}
	}

	fileName, err := s.uploader.Upload(file, header)
	if err != nil {
		return err
	}

	article.FileName = &fileName
	return s.store.Save(article)
}

// DeleteThumbnail removes the stored file and clears the filename.
func (s *ArticleService) DeleteThumbnail(article *models.Article) error {
	if article == nil {
		return ErrMissingInput
	}

	lock := s.thumbLock(article.ID)
	lock.Lock()
	defer lock.Unlock()

	if article.FileName == nil {
		return nil
	}
	if err := s.uploader.Remove(*article.FileName); err != nil {
		return err
	}

	article.FileName = nil
	return s.store.Save(article)
}

// thumbLock serializes thumbnail replace/delete per article, so two
// concurrent uploads cannot orphan a file on disk.
func (s *ArticleService) thumbLock(articleID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.thumbLocks[articleID]
	if !ok {
		lock = &sync.Mutex{}
		s.thumbLocks[articleID] = lock
	}
	return lock
}
