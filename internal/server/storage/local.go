package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore writes files into a directory on the server host. The HTTP
// layer serves the directory under /static/uploads/.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore ensures dir exists and returns a store publishing URLs
// rooted at baseURL.
func NewLocalStore(dir string, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &LocalStore{dir: dir, baseURL: baseURL}, nil
}

func (s *LocalStore) Put(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	path := filepath.Join(s.dir, key)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	return fmt.Sprintf("%s/static/uploads/%s", s.baseURL, key), nil
}
