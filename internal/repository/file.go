package repository

import (
	"context"

	"filemanager/internal/model"
)

// FileMetadataRepository defines data access for file metadata using SQL queries only.
// No business logic here — strictly persistence operations.
// Records are insert-only: there is no update or delete operation because the
// service never mutates a row once written.
type FileMetadataRepository interface {
	// Create inserts a new metadata row and returns the stored record including
	// the database-assigned id.
	Create(ctx context.Context, meta *model.FileMetadata) (*model.FileMetadata, error)

	// FindByFileName returns the record whose stored name matches exactly.
	// A miss surfaces as sql.ErrNoRows; callers translate it.
	FindByFileName(ctx context.Context, fileName string) (*model.FileMetadata, error)

	// ListAll returns every record in primary-key order.
	ListAll(ctx context.Context) ([]model.FileMetadata, error)
}
