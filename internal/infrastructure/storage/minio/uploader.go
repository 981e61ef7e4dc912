package minio

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"

	"moodfeed/internal/domain/entity"
	"moodfeed/internal/domain/repository/storage"
	"moodfeed/pkg/logger"
)

type Uploader struct {
	minioClient *minio.Client
	bucket      string
	publicURL   func(string) string
	cfg         *UploaderConfig
}

func NewUploader(minioClient *minio.Client, bucket string, publicURL func(string) string,
	cfg *UploaderConfig,
) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		bucket:      bucket,
		publicURL:   publicURL,
		cfg:         cfg,
	}
}

func (u *Uploader) SaveObject(ctx context.Context, key string, data []byte,
	contentType string,
) (entity.StoredObject, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := u.minioClient.PutObject(ctx, u.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		logger.Error("failed to upload object", "key", key, "err", err)

		return entity.StoredObject{}, fmt.Errorf("upload object: %w", err)
	}

	return entity.StoredObject{Key: key, URL: u.publicURL(key)}, nil
}

func (u *Uploader) SaveText(ctx context.Context, key, text, contentType string) (entity.StoredObject, error) {
	if contentType == "" {
		contentType = storage.DefaultTextContentType
	}

	return u.SaveObject(ctx, key, []byte(text), contentType)
}
