package uploads

import (
	"context"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps uploads as files under a single directory.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

// path rejects names that would escape the uploads directory.
func (s *LocalStore) path(name string) (string, error) {
	cleaned := filepath.Clean(name)
	if cleaned != filepath.Base(cleaned) || strings.HasPrefix(cleaned, ".") {
		return "", ErrNotFound
	}
	return filepath.Join(s.dir, cleaned), nil
}

func (s *LocalStore) Save(_ context.Context, name, _ string, r io.Reader) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	f, err := os.Create(p)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(p)
		return err
	}
	return f.Close()
}

func (s *LocalStore) Open(_ context.Context, name string) (io.ReadCloser, string, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}
	contentType := mime.TypeByExtension(filepath.Ext(p))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return f, contentType, nil
}

func (s *LocalStore) Remove(_ context.Context, name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
