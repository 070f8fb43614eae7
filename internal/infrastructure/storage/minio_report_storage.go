// Package storage keeps exported reports in MinIO (or any S3 compatible store).
package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"gestao_compras/internal/config"
	"gestao_compras/internal/usecase/interfaces"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

type MinioReportStorage struct {
	client *minio.Client
	bucket string
}

var _ interfaces.IReportStorage = (*MinioReportStorage)(nil)

// NewMinioReportStorage connects to MinIO and makes sure the bucket exists.
func NewMinioReportStorage(ctx context.Context, cfg config.MinIOConfig) (*MinioReportStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		zap.L().Info("[storage][minio] bucket created", zap.String("bucket", cfg.Bucket))
	}
	return &MinioReportStorage{client: client, bucket: cfg.Bucket}, nil
}

func (s *MinioReportStorage) Upload(ctx context.Context, name string, content []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload report: %w", err)
	}
	return nil
}

func (s *MinioReportStorage) PresignedURL(ctx context.Context, name string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, name, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign report: %w", err)
	}
	return u.String(), nil
}
