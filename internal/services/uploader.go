package services

import (
	"errors"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileUploader stores thumbnail files in a configured directory under
// generated names, so uploads never collide or overwrite each other.
type FileUploader struct {
	targetDir string
}

func NewFileUploader(targetDir string) *FileUploader {
	return &FileUploader{targetDir: targetDir}
}

// Upload writes the file into the target directory and returns the
// generated filename ("img-<uuid><ext>").
func (u *FileUploader) Upload(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = ".png"
	}
	fileName := "img-" + uuid.NewString() + ext

	if err := os.MkdirAll(u.targetDir, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(u.targetDir, fileName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return fileName, nil
}

// Remove deletes a stored file. A file that is already gone is not an
// error.
func (u *FileUploader) Remove(fileName string) error {
	if fileName == "" {
		return nil
	}
	err := os.Remove(filepath.Join(u.targetDir, fileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Dir returns the configured target directory.
func (u *FileUploader) Dir() string {
	return u.targetDir
}
