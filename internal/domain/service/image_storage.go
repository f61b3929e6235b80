package service

import (
	"context"
	"io"
)

// StoredImage describes an uploaded image.
type StoredImage struct {
	Key         string // bucket key, e.g. "uploads/ring-1700000000.png"
	ContentType string
	Size        int64
}

// ImageStorage keeps product images.
type ImageStorage interface {
	// Validate sniffs the content type and rewinds r. It returns
	// ErrUnsupportedImageType for anything but png/jpeg.
	Validate(r io.ReadSeeker) (string, error)

	// Save sniffs the content type, rejects anything but png/jpeg with
	// ErrUnsupportedImageType, and only then writes the object.
	Save(ctx context.Context, originalName string, r io.Reader) (*StoredImage, error)

	// Open streams a stored image. The caller closes the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	Delete(ctx context.Context, key string) error

	// URL returns the public link for a key under baseURL.
	URL(baseURL, key string) string
}
