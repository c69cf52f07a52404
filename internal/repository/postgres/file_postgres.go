package postgres

import (
	"context"
	"database/sql"

	"filemanager/internal/model"
	"filemanager/internal/repository"
)

// FilePostgres is a PostgreSQL implementation of repository.FileMetadataRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type FilePostgres struct {
	db *sql.DB
}

// NewFilePostgres creates a new FilePostgres repository.
func NewFilePostgres(db *sql.DB) *FilePostgres {
	return &FilePostgres{db: db}
}

var _ repository.FileMetadataRepository = (*FilePostgres)(nil)

// Create inserts a new file metadata row and returns the stored record.
func (r *FilePostgres) Create(ctx context.Context, meta *model.FileMetadata) (*model.FileMetadata, error) {
	const q = `
		INSERT INTO file_metadata (file_name, original_file_name, file_type, file_size, file_path, upload_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, file_name, original_file_name, file_type, file_size, file_path, upload_time
	`
	row := r.db.QueryRowContext(ctx, q,
		meta.FileName,
		meta.OriginalFileName,
		meta.FileType,
		meta.FileSize,
		meta.FilePath,
		meta.UploadTime,
	)
	var out model.FileMetadata
	if err := row.Scan(
		&out.ID,
		&out.FileName,
		&out.OriginalFileName,
		&out.FileType,
		&out.FileSize,
		&out.FilePath,
		&out.UploadTime,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByFileName fetches a single record by its stored file name.
func (r *FilePostgres) FindByFileName(ctx context.Context, fileName string) (*model.FileMetadata, error) {
	const q = `
		SELECT id, file_name, original_file_name, file_type, file_size, file_path, upload_time
		FROM file_metadata
		WHERE file_name = $1
	`
	row := r.db.QueryRowContext(ctx, q, fileName)
	var m model.FileMetadata
	if err := row.Scan(
		&m.ID,
		&m.FileName,
		&m.OriginalFileName,
		&m.FileType,
		&m.FileSize,
		&m.FilePath,
		&m.UploadTime,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListAll returns every metadata row ordered by primary key.
func (r *FilePostgres) ListAll(ctx context.Context) ([]model.FileMetadata, error) {
	const q = `
		SELECT id, file_name, original_file_name, file_type, file_size, file_path, upload_time
		FROM file_metadata
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.FileMetadata, 0)
	for rows.Next() {
		var m model.FileMetadata
		if err := rows.Scan(
			&m.ID,
			&m.FileName,
			&m.OriginalFileName,
			&m.FileType,
			&m.FileSize,
			&m.FilePath,
			&m.UploadTime,
		); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
