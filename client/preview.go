package client

import (
	"io"
	"os"
	"path/filepath"
	"sync"
)

// ImagePreview is a scoped handle to a temporary copy of an image selected
// for upload, for display before the entry is saved. Every preview must be
// released on each exit path of the dialog that created it: save, cancel,
// or replacement by a newer file.
type ImagePreview struct {
	// Path of the temporary image file, valid until Release.
	Path string

	once sync.Once
	err  error
}

// NewImagePreview copies the image bytes into a temporary file and returns
// the handle. The caller owns the handle and must call Release.
func NewImagePreview(name string, r io.Reader) (*ImagePreview, error) {
	f, err := os.CreateTemp("", "journal-preview-*"+filepath.Ext(name))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, err
	}
	return &ImagePreview{Path: f.Name()}, nil
}

// Release deletes the temporary file. Safe to call more than once.
func (p *ImagePreview) Release() error {
	p.once.Do(func() {
		if err := os.Remove(p.Path); err != nil && !os.IsNotExist(err) {
			p.err = err
		}
	})
	return p.err
}
