package mocks

import (
	"context"

	"filemanager/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockFileMetadataRepository struct {
	mock.Mock
}

func (m *MockFileMetadataRepository) Create(ctx context.Context, meta *model.FileMetadata) (*model.FileMetadata, error) {
	args := m.Called(ctx, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileMetadata), args.Error(1)
}

func (m *MockFileMetadataRepository) FindByFileName(ctx context.Context, fileName string) (*model.FileMetadata, error) {
	args := m.Called(ctx, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileMetadata), args.Error(1)
}

func (m *MockFileMetadataRepository) ListAll(ctx context.Context) ([]model.FileMetadata, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FileMetadata), args.Error(1)
}
