package s3

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Host      string `envconfig:"HOST"` // localhost:9000
	AccessKey string `envconfig:"ACCESS_KEY"`
	SecretKey string `envconfig:"SECRET_KEY"`
	Bucket    string `envconfig:"BUCKET" default:"chart-snapshots"`
	Region    string `envconfig:"REGION"`
	UseSSL    bool   `envconfig:"USE_SSL" default:"false"`
	// CreateBucket создать бакет при старте, если его нет
	CreateBucket bool `envconfig:"CREATE_BUCKET" default:"false"`
	PresignTTL   int  `envconfig:"PRESIGN_TTL" default:"15"` // в минутах
}

// Enabled архив снапшотов включён, только если задан адрес хранилища
func (c *Config) Enabled() bool {
	return c.Host != ""
}

// NewClient создаёт MinIO клиент и проверяет бакет
func (c *Config) NewClient(ctx context.Context) (*minio.Client, error) {
	client, err := minio.New(c.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(c.AccessKey, c.SecretKey, ""),
		Secure: c.UseSSL,
		Region: c.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(checkCtx, c.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if !c.CreateBucket {
			return nil, fmt.Errorf("bucket %s does not exist", c.Bucket)
		}
		if err := client.MakeBucket(checkCtx, c.Bucket, minio.MakeBucketOptions{Region: c.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", c.Bucket, err)
		}
	}

	return client, nil
}
