package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// LocalStore writes images to a directory served by the HTTP layer
// under BaseURL (e.g. gin's r.Static("/uploads", dir)).
type LocalStore struct {
	Dir     string
	BaseURL string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{Dir: dir, BaseURL: baseURL}
}

func (s *LocalStore) Put(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.Dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	ext := filepath.Ext(file.Filename)
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.NewString(), ext)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	if err := dst.Sync(); err != nil {
		return "", err
	}

	return s.BaseURL + "/" + filename, nil
}

func (s *LocalStore) Delete(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}
	// The reference is BaseURL + "/" + filename; only the filename maps
	// back to disk.
	filename := path.Base(ref)
	if err := os.Remove(filepath.Join(s.Dir, filename)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
