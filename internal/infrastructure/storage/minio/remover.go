package minio

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
)

type Remover struct {
	minioClient *minio.Client
	bucket      string
	cfg         *RemoverConfig
}

func NewRemover(minioClient *minio.Client, bucket string, cfg *RemoverConfig) *Remover {
	return &Remover{
		minioClient: minioClient,
		bucket:      bucket,
		cfg:         cfg,
	}
}

// DeleteObject succeeds for missing keys; minio treats removal as idempotent.
func (r *Remover) DeleteObject(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	if err := r.minioClient.RemoveObject(ctx, r.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object: %w", err)
	}

	return nil
}
