// Package database selects and opens the metadata store backend.
package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	dbRepository "moodfeed/internal/domain/repository/database"
	"moodfeed/internal/infrastructure/database/filestore"
	"moodfeed/internal/infrastructure/database/mongo"
	"moodfeed/internal/infrastructure/database/postgres"
	"moodfeed/pkg/logger"
)

type Provider string

const (
	ProviderFile     Provider = "file"
	ProviderPostgres Provider = "postgres"
	ProviderMongo    Provider = "mongo"
)

var ErrUnknownProvider = errors.New("unknown database provider")

type Config struct {
	Provider string           `yaml:"provider" env:"DB_PROVIDER" env-default:"file"`
	File     filestore.Config `yaml:"file"`
	Postgres postgres.Config  `yaml:"postgres"`
	Mongo    mongo.Config     `yaml:"mongo"`
}

type constructor func(ctx context.Context, cfg Config) (dbRepository.Store, error)

var constructors = map[Provider]constructor{
	ProviderFile: func(_ context.Context, cfg Config) (dbRepository.Store, error) {
		return filestore.New(cfg.File), nil
	},
	ProviderPostgres: func(ctx context.Context, cfg Config) (dbRepository.Store, error) {
		return postgres.Connect(ctx, cfg.Postgres)
	},
	ProviderMongo: func(ctx context.Context, cfg Config) (dbRepository.Store, error) {
		return mongo.Connect(ctx, cfg.Mongo)
	},
}

// aliases keeps the provider names of older deployments working.
var aliases = map[string]Provider{
	"sqlite":   ProviderFile,
	"json":     ProviderFile,
	"supabase": ProviderPostgres,
	"pg":       ProviderPostgres,
	"mongodb":  ProviderMongo,
}

// ResolveProvider maps a configured name to a provider. Empty means file.
func ResolveProvider(name string) (Provider, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ProviderFile, nil
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

// Open builds the configured store and runs its Init.
func Open(ctx context.Context, cfg Config) (dbRepository.Store, error) {
	provider, err := ResolveProvider(cfg.Provider)
	if err != nil {
		return nil, err
	}

	store, err := constructors[provider](ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", provider, err)
	}

	if err := store.Init(ctx); err != nil {
		_ = store.Close()

		return nil, fmt.Errorf("init %s store: %w", provider, err)
	}

	logger.Info("metadata store ready", "provider", string(provider))

	return store, nil
}
