package storage

import (
	"context"
	"errors"
	"io"
)

// Package storage contains byte storage abstractions. The service stores
// uploaded content under server-generated keys and reads it back by the
// locator returned from Put; implementations decide what that locator is
// (a disk path for the local backend, an object key for MinIO).

// ErrObjectNotFound signals that the requested locator holds no readable
// content. Both backends map their native absence errors onto it so the
// service needs no knowledge of lower-level failure causes.
var ErrObjectNotFound = errors.New("stored object not found")

// PutOptions define optional parameters for storing content.
// Size should be the exact number of bytes if known; if unknown, set to -1
// and the implementation will buffer/chunk as supported by the backend.
type PutOptions struct {
	Size        int64
	ContentType string
}

// Storage stores and retrieves uploaded file content.
type Storage interface {
	// Put writes the full stream under key, replacing any existing content at
	// that key, and returns the concrete locator used. Implementations ensure
	// their container (directory or bucket) exists before writing.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (string, error)
	// Get opens the stored bytes at the locator for reading.
	// Returns ErrObjectNotFound when the locator is absent or unreadable.
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	// Delete removes stored content; used to roll back a failed upload.
	Delete(ctx context.Context, path string) error
}
