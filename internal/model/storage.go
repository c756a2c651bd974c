package model

import (
	"context"
)

// Upload is an incoming file.
type Upload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ObjectStorage persists binary assets outside the database.
type ObjectStorage interface {
	Exists(ctx context.Context, path string) (bool, error)
	IsPublic(path string) bool
	AllocateName(ctx context.Context, stem, ext, dir string) (string, error)
	URL(ctx context.Context, path string) (string, error)
	Save(ctx context.Context, path string, file Upload, isThumb bool) (string, error)
	GenerateThumbnail(ctx context.Context, path string, content []byte) (string, error)
	Delete(ctx context.Context, path string) error
	EnsureBucket(ctx context.Context) error
}
