package service

import (
	"context"
	"io"
)

// StoredImage describes an uploaded image.
type StoredImage struct {
	Name        string // Object name in the store.
	URL         string // Public URL, e.g. /uploads/<name>.
	ContentType string
	Size        int64
}

// ImageStore persists uploaded product images.
type ImageStore interface {
	// Save stores the image under a generated name derived from fieldName and originalName's extension.
	Save(ctx context.Context, fieldName, originalName string, data []byte) (*StoredImage, error)

	// Open returns a reader over a stored image together with its content type.
	Open(ctx context.Context, name string) (io.ReadCloser, string, error)
}
