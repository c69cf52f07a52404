package mocks

import (
	"context"
	"io"

	"filemanager/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.FileMetadata, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileMetadata), args.Error(1)
}

func (m *MockFileService) ListAll(ctx context.Context) ([]model.FileMetadata, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FileMetadata), args.Error(1)
}

func (m *MockFileService) Download(ctx context.Context, fileName string) (io.ReadCloser, *model.FileMetadata, error) {
	args := m.Called(ctx, fileName)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*model.FileMetadata), args.Error(2)
}

func (m *MockFileService) GetContent(ctx context.Context, fileName string) (string, *model.FileMetadata, error) {
	args := m.Called(ctx, fileName)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.FileMetadata), args.Error(2)
}

func (m *MockFileService) GetMetadata(ctx context.Context, fileName string) (*model.FileMetadata, error) {
	args := m.Called(ctx, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileMetadata), args.Error(1)
}
