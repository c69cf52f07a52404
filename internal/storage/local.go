package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"filemanager/internal/config"
)

// localStorage implements Storage against a flat directory on local disk.
// Keys never contain path separators (they are UUID-based stored names), so
// every object lands directly inside the configured root.
type localStorage struct {
	root string
}

// NewLocal creates a local disk storage rooted at cfg.UploadDir.
// The directory is created if absent; creation is idempotent.
func NewLocal(cfg config.StorageConfig) (Storage, error) {
	if cfg.UploadDir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &localStorage{root: cfg.UploadDir}, nil
}

// Put writes the stream to <root>/<key>, truncating any existing file there.
func (l *localStorage) Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (string, error) {
	// Re-check the directory on every write; it may have been removed since
	// construction and MkdirAll is cheap when it already exists.
	if err := os.MkdirAll(l.root, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	path := filepath.Join(l.root, key)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close file: %w", err)
	}
	return path, nil
}

// Get opens the file at the stored path.
func (l *localStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	return f, nil
}

// Delete removes the file at the stored path. A missing file is not an error.
func (l *localStorage) Delete(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
