// Package storage selects and opens the blob store backend.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	storageRepository "moodfeed/internal/domain/repository/storage"
	"moodfeed/internal/infrastructure/storage/local"
	"moodfeed/internal/infrastructure/storage/minio"
	"moodfeed/internal/infrastructure/storage/s3"
	"moodfeed/pkg/logger"
)

type Provider string

const (
	ProviderLocal Provider = "local"
	ProviderMinio Provider = "minio"
	ProviderS3    Provider = "s3"
)

var ErrUnknownProvider = errors.New("unknown storage provider")

type Config struct {
	Provider string       `yaml:"provider" env:"STORAGE_PROVIDER" env-default:"local"`
	Local    local.Config `yaml:"local"`
	Minio    minio.Config `yaml:"minio"`
	S3       s3.Config    `yaml:"s3"`
}

// Static is implemented by backends whose objects the HTTP layer serves itself.
type Static interface {
	BaseDir() string
	URLPrefix() string
}

type constructor func(ctx context.Context, cfg Config) (storageRepository.Store, error)

var constructors = map[Provider]constructor{
	ProviderLocal: func(_ context.Context, cfg Config) (storageRepository.Store, error) {
		return local.New(cfg.Local)
	},
	ProviderMinio: func(ctx context.Context, cfg Config) (storageRepository.Store, error) {
		return minio.New(ctx, cfg.Minio)
	},
	ProviderS3: func(ctx context.Context, cfg Config) (storageRepository.Store, error) {
		return s3.New(ctx, cfg.S3)
	},
}

var aliases = map[string]Provider{
	"supabase": ProviderS3,
	"fs":       ProviderLocal,
}

// ResolveProvider maps a configured name to a provider. Empty means local.
func ResolveProvider(name string) (Provider, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ProviderLocal, nil
	}

	if p, ok := aliases[name]; ok {
		return p, nil
	}

	p := Provider(name)
	if _, ok := constructors[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}

	return p, nil
}

func Open(ctx context.Context, cfg Config) (storageRepository.Store, error) {
	provider, err := ResolveProvider(cfg.Provider)
	if err != nil {
		return nil, err
	}

	store, err := constructors[provider](ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", provider, err)
	}

	logger.Info("blob store ready", "provider", string(provider))

	return store, nil
}
