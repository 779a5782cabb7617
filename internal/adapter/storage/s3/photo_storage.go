package s3

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/DaliGabriel/yo-compro/internal/app/config"
	"github.com/DaliGabriel/yo-compro/internal/platform/logger"
	"github.com/DaliGabriel/yo-compro/internal/repository"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type photoStorage struct {
	client *minio.Client
	bucket string
	log    logger.Logger
}

func NewPhotoStorage(ctx context.Context, cfg config.MinIOConfig, log logger.Logger) (repository.PhotoStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", cfg.Endpoint, err)
	}

	if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		exists, errExists := client.BucketExists(ctx, cfg.Bucket)
		if errExists != nil || !exists {
			return nil, fmt.Errorf("failed to make/verify bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &photoStorage{
		client: client,
		bucket: cfg.Bucket,
		log:    log,
	}, nil
}

// Upload stores the photo bytes and returns the object key. The key is what
// listings carry as ImageRef; it is never a URL.
func (s *photoStorage) Upload(ctx context.Context, originalFileName string, data []byte) (string, error) {
	ext := filepath.Ext(originalFileName)
	objectKey := fmt.Sprintf("photos/%s%s", uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		s.log.Errorf("PutObject failed for bucket %s, key %s: %v", s.bucket, objectKey, err)
		return "", fmt.Errorf("failed to upload object %s to bucket %s: %w", objectKey, s.bucket, err)
	}

	s.log.Infof("Photo uploaded: bucket=%s key=%s size=%d original=%s", s.bucket, objectKey, len(data), originalFileName)
	return objectKey, nil
}
