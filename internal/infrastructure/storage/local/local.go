// Package local keeps blobs as files below a base directory.
// The HTTP layer serves that directory under URLPrefix.
package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"moodfeed/internal/domain/entity"
	"moodfeed/internal/domain/repository/storage"
)

const maxKeyLength = 1024

var (
	ErrEmptyKey         = errors.New("key cannot be empty")
	ErrKeyLengthExceeds = errors.New("maximal key length exceeds")
	ErrInvalidKey       = errors.New("key must be a relative path without '..'")
)

type Config struct {
	BaseDir   string `yaml:"base_dir"   env:"STORAGE_LOCAL_DIR"        env-default:"./public/uploads"`
	URLPrefix string `yaml:"url_prefix" env:"STORAGE_LOCAL_URL_PREFIX" env-default:"/uploads"`
}

type Store struct {
	baseDir   string
	urlPrefix string
}

func New(cfg Config) (*Store, error) {
	if cfg.BaseDir == "" {
		return nil, errors.New("base directory is required")
	}

	if err := os.MkdirAll(cfg.BaseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create base directory: %w", err)
	}

	return &Store{
		baseDir:   cfg.BaseDir,
		urlPrefix: strings.TrimRight(cfg.URLPrefix, "/"),
	}, nil
}

// BaseDir is the directory the HTTP layer serves.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// URLPrefix is the route the HTTP layer serves BaseDir under.
func (s *Store) URLPrefix() string {
	if s.urlPrefix == "" {
		return "/"
	}

	return s.urlPrefix
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if len(key) > maxKeyLength {
		return ErrKeyLengthExceeds
	}
	if strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return ErrInvalidKey
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." || part == "." || part == "" {
			return ErrInvalidKey
		}
	}

	return nil
}

func (s *Store) fullPath(key string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(key))
}

func (s *Store) SaveObject(_ context.Context, key string, data []byte, _ string) (entity.StoredObject, error) {
	if err := validateKey(key); err != nil {
		return entity.StoredObject{}, err
	}

	full := s.fullPath(key)
	dir := filepath.Dir(full)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return entity.StoredObject{}, fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return entity.StoredObject{}, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()

		return entity.StoredObject{}, fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return entity.StoredObject{}, fmt.Errorf("close file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return entity.StoredObject{}, fmt.Errorf("chmod file: %w", err)
	}

	if err := os.Rename(tmp.Name(), full); err != nil {
		return entity.StoredObject{}, fmt.Errorf("move file into place: %w", err)
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
	return s.urlPrefix + "/" + path.Clean(key)
}

func (s *Store) DeleteObject(_ context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if err := os.Remove(s.fullPath(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete file: %w", err)
	}

	return nil
}
