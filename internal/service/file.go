package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"filemanager/internal/model"
	"filemanager/internal/repository"
	"filemanager/internal/storage"
)

var (
	ErrFileNameRequired   = errors.New("file name is required")
	ErrNotFound           = errors.New("file not found")
	ErrReaderNil          = errors.New("reader is nil")
	ErrUnsupportedType    = errors.New("file type not supported")
	ErrUnsupportedContent = errors.New("file content cannot be displayed as text")
)

// allowedFileTypes is the fixed set of accepted upload extensions.
var allowedFileTypes = []string{"txt", "json", "jpg", "jpeg", "png", "gif", "pdf", "doc", "docx"}

// textFileTypes is the subset whose content may be returned as decoded text.
var textFileTypes = []string{"txt", "json"}

// FileService defines the use cases for handling uploaded files.
type FileService interface {
	// Upload validates the extension, stores the content under a generated
	// UUID-based name, and persists a metadata record. If the metadata insert
	// fails the written bytes are deleted so no orphan survives.
	Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.FileMetadata, error)

	// ListAll returns every stored file's metadata.
	ListAll(ctx context.Context) ([]model.FileMetadata, error)

	// Download returns the stored content stream together with its record.
	// Any lookup or storage failure surfaces as ErrNotFound; the caller owns
	// closing the returned stream.
	Download(ctx context.Context, fileName string) (io.ReadCloser, *model.FileMetadata, error)

	// GetContent returns the full decoded text of a text-displayable file
	// together with its record.
	GetContent(ctx context.Context, fileName string) (string, *model.FileMetadata, error)

	// GetMetadata returns the record for a stored file name.
	GetMetadata(ctx context.Context, fileName string) (*model.FileMetadata, error)
}

// fileService is a concrete implementation of FileService.
type fileService struct {
	store storage.Storage
	repo  repository.FileMetadataRepository
}

// NewFileService constructs a new FileService.
func NewFileService(store storage.Storage, repo repository.FileMetadataRepository) FileService {
	return &fileService{store: store, repo: repo}
}

func (s *fileService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.FileMetadata, error) {
	if r == nil {
		return nil, ErrReaderNil
	}

	ext := fileExtension(originalFilename)
	if !slices.Contains(allowedFileTypes, strings.ToLower(ext)) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}

	// Stored name keeps the extension as the client sent it; only the
	// persisted file_type is normalized to lower case.
	genName := uuid.New().String() + "." + ext

	path, err := s.store.Put(ctx, genName, r, storage.PutOptions{
		Size:        size,
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	meta := &model.FileMetadata{
		FileName:         genName,
		OriginalFileName: originalFilename,
		FileType:         strings.ToLower(ext),
		FileSize:         size,
		FilePath:         path,
		UploadTime:       time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, meta)
	if err != nil {
		// Rollback: remove the just-written bytes so a failed upload leaves no trace.
		if delErr := s.store.Delete(ctx, path); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

// ListAll delegates to the repository without transformation.
func (s *fileService) ListAll(ctx context.Context) ([]model.FileMetadata, error) {
	return s.repo.ListAll(ctx)
}

func (s *fileService) Download(ctx context.Context, fileName string) (io.ReadCloser, *model.FileMetadata, error) {
	meta, err := s.lookup(ctx, fileName)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.store.Get(ctx, meta.FilePath)
	if err != nil {
		// Missing or unreadable bytes are indistinguishable from a missing
		// record at this boundary.
		return nil, nil, ErrNotFound
	}
	return rc, meta, nil
}

func (s *fileService) GetContent(ctx context.Context, fileName string) (string, *model.FileMetadata, error) {
	meta, err := s.lookup(ctx, fileName)
	if err != nil {
		return "", nil, err
	}
	if !slices.Contains(textFileTypes, strings.ToLower(meta.FileType)) {
		return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedContent, meta.FileType)
	}

	rc, err := s.store.Get(ctx, meta.FilePath)
	if err != nil {
		return "", nil, fmt.Errorf("read content: %w", err)
	}
	defer rc.Close()

	// Text files only; loading the whole content into memory is fine here.
	b, err := io.ReadAll(rc)
	if err != nil {
		return "", nil, fmt.Errorf("read content: %w", err)
	}
	return string(b), meta, nil
}

func (s *fileService) GetMetadata(ctx context.Context, fileName string) (*model.FileMetadata, error) {
	return s.lookup(ctx, fileName)
}

func (s *fileService) lookup(ctx context.Context, fileName string) (*model.FileMetadata, error) {
	if fileName == "" {
		return nil, ErrFileNameRequired
	}
	meta, err := s.repo.FindByFileName(ctx, fileName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return meta, nil
}

// fileExtension returns the substring after the last dot, or "" when the
// name has no dot.
func fileExtension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return name[i+1:]
}
