package storage

import (
	"context"
	"mime/multipart"
)

// ImageStore persists uploaded artwork images and resolves them to a
// reference the frontend can fetch immediately: a local path like
// "/uploads/artworks/<name>" or an absolute URL. The variant is chosen
// once at boot; callers only ever hold this interface.
type ImageStore interface {
	Put(ctx context.Context, file *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, ref string) error
}
