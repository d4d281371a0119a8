// Package uploads stores journal entry images. Entries reference stored
// images by a server-relative "uploads/<name>" path regardless of which
// backend holds the bytes; the API serves them back at /uploads/<name>.
package uploads

import (
	"context"
	"errors"
	"io"
)

// MaxImageSize is the largest accepted image upload, 5 MiB.
const MaxImageSize = 5 * 1024 * 1024

var ErrNotFound = errors.New("upload not found")

// Store persists uploaded images under opaque names.
type Store interface {
	// Save writes the image bytes under name. The reader is consumed fully.
	Save(ctx context.Context, name, contentType string, r io.Reader) error
	// Open returns the stored bytes and their content type. The caller
	// closes the reader. Returns ErrNotFound when name has never been saved.
	Open(ctx context.Context, name string) (io.ReadCloser, string, error)
	// Remove deletes the stored image. Removing a missing name is not an error.
	Remove(ctx context.Context, name string) error
}
