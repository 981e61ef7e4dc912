// Package s3 stores blobs in any S3-compatible bucket (AWS, Supabase storage, MinIO).
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"moodfeed/internal/domain/entity"
	"moodfeed/internal/domain/repository/storage"
	"moodfeed/pkg/logger"
)

type Config struct {
	Region          string `yaml:"region"          env:"S3_REGION"            env-default:"us-east-1"`
	Bucket          string `yaml:"bucket"          env:"STORAGE_BUCKET"       env-default:"uploads"`
	AccessKeyID     string `yaml:"-"               env:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"-"               env:"S3_SECRET_ACCESS_KEY"`
	Endpoint        string `yaml:"endpoint"        env:"S3_ENDPOINT"`
	UsePathStyle    bool   `yaml:"use_path_style"  env:"S3_USE_PATH_STYLE"`
	PublicBaseURL   string `yaml:"public_base_url" env:"STORAGE_PUBLIC_BASE_URL"`

	// CreateBucket creates the bucket with a public read policy when it is missing.
	// Hosts that manage buckets out of band (Supabase) leave it off.
	CreateBucket bool  `yaml:"create_bucket" env:"S3_CREATE_BUCKET"`
	Timeout      int64 `yaml:"timeout_in_ms" env:"S3_TIMEOUT_IN_MS" env-default:"30000"`
}

type Store struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	baseURL  string
	timeout  time.Duration
}

func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("bucket name is required")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	if cfg.CreateBucket {
		if err := ensureBucket(ctx, client, cfg.Bucket); err != nil {
			return nil, err
		}
	}

	timeout := time.Duration(cfg.Timeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Store{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   cfg.Bucket,
		baseURL:  baseURL(cfg),
		timeout:  timeout,
	}, nil
}

// baseURL is the prefix every object key is appended to.
func baseURL(cfg Config) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	case cfg.Endpoint != "" || cfg.UsePathStyle:
		endpoint := strings.TrimRight(cfg.Endpoint, "/")
		if endpoint == "" {
			endpoint = fmt.Sprintf("https://s3.%s.amazonaws.com", cfg.Region)
		}

		return endpoint + "/" + cfg.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}

func ensureBucket(ctx context.Context, client *s3.Client, bucket string) error {
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
	if err == nil {
		return nil
	}

	if _, err := client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(bucket)}); err != nil {
		return fmt.Errorf("create bucket: %w", err)
	}

	policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},`+
		`"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, bucket)
	if _, err := client.PutBucketPolicy(ctx, &s3.PutBucketPolicyInput{
		Bucket: aws.String(bucket),
		Policy: aws.String(policy),
	}); err != nil {
		return fmt.Errorf("set bucket policy: %w", err)
	}

	logger.Info("bucket created", "bucket", bucket)

	return nil
}

func (s *Store) SaveObject(ctx context.Context, key string, data []byte,
	contentType string,
) (entity.StoredObject, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return entity.StoredObject{}, fmt.Errorf("upload object: %w", err)
	}

	return entity.StoredObject{Key: key, URL: s.PublicURL(key)}, nil
}

func (s *Store) SaveText(ctx context.Context, key, text, contentType string) (entity.StoredObject, error) {
	if contentType == "" {
		contentType = storage.DefaultTextContentType
	}

	return s.SaveObject(ctx, key, []byte(text), contentType)
}

func (s *Store) PublicURL(key string) string {
	return s.baseURL + "/" + strings.TrimLeft(key, "/")
}

func (s *Store) DeleteObject(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}

	return nil
}
