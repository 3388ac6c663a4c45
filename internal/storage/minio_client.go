package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"photomarket/internal/config"
	"photomarket/internal/models"
)

type Storage interface {
	UploadImage(ctx context.Context, imageID string, data []byte) (string, error)
	DeleteImage(ctx context.Context, imageID string) error
	GetSignedURL(ctx context.Context, imageID string, expiry time.Duration) (string, error)
}

type MinIOClient struct {
	client *minio.Client
	bucket string
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create MinIO client: %w", err)
	}

	return &MinIOClient{
		client: minioClient,
		bucket: cfg.MinIO.BucketName,
	}, nil
}

// UploadImage stores the raw payload under the image id. The object key
// is exactly the catalog record id, one blob per listing.
func (m *MinIOClient) UploadImage(ctx context.Context, imageID string, data []byte) (string, error) {
	contentType := mimetype.Detect(data).String()

	_, err := m.client.PutObject(ctx, m.bucket, imageID, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"uploaded-at": time.Now().Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", wrapStorageError("upload", err)
	}

	return contentType, nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, imageID string) error {
	err := m.client.RemoveObject(ctx, m.bucket, imageID, minio.RemoveObjectOptions{})
	if err != nil {
		return wrapStorageError("delete", err)
	}
	return nil
}

func (m *MinIOClient) GetSignedURL(ctx context.Context, imageID string, expiry time.Duration) (string, error) {
	signedURL, err := m.client.PresignedGetObject(ctx, m.bucket, imageID, expiry, nil)
	if err != nil {
		return "", wrapStorageError("sign url", err)
	}

	return signedURL.String(), nil
}

func wrapStorageError(op string, err error) error {
	resp := minio.ToErrorResponse(err)
	return &models.StorageError{
		Op:           op,
		AccessDenied: resp.Code == "AccessDenied",
		Cause:        err,
	}
}
