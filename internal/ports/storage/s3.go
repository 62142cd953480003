package storage

import (
	"context"
	"time"
)

// IS3Client интерфейс для работы с S3-совместимым хранилищем (MinIO)
type IS3Client interface {
	PutFile(ctx context.Context, path string, data []byte, contentType string) error
	GetFile(ctx context.Context, path string) ([]byte, error)
	DeleteFile(ctx context.Context, path string) error
	GetPresignedURL(ctx context.Context, path string, expires time.Duration) (string, error)
}
