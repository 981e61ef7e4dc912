package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadfromFile(t *testing.T) {
	cfg, err := Load("./config.yml")
	require.NoError(t, err, "error must be nil.")

	assert.Equal(t, ":3000", cfg.HTTP.Address)
	assert.Equal(t, "file", cfg.Database.Provider)
	assert.Equal(t, ".data", cfg.Database.File.Dir)
	assert.Equal(t, "local", cfg.Storage.Provider)
	assert.Equal(t, "/uploads", cfg.Storage.Local.URLPrefix)
	assert.Equal(t, "moodfeed:events", cfg.Broker.StreamName)
	assert.Equal(t, int64(30000), cfg.Storage.Minio.UploaderConfig.Timeout)
	assert.Equal(t, []string{"console"}, cfg.Logger.Targets)
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, ":3000", cfg.HTTP.Address)
	assert.Equal(t, "50M", cfg.HTTP.Router.BodyLimit)
	assert.Equal(t, "file", cfg.Database.Provider)
	assert.Equal(t, "app_", cfg.Database.Postgres.TablePrefix)
	assert.Equal(t, "local", cfg.Storage.Provider)
	assert.Equal(t, "./public/uploads", cfg.Storage.Local.BaseDir)
	assert.Equal(t, "uploads", cfg.Storage.S3.Bucket)
	assert.Empty(t, cfg.Broker.URI)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_ADDRESS", ":8080")
	t.Setenv("DB_PROVIDER", "supabase")
	t.Setenv("DATABASE_URI", "postgres://u:p@localhost:5432/db")
	t.Setenv("DB_TABLE_PREFIX", "mood_")
	t.Setenv("STORAGE_PROVIDER", "minio")
	t.Setenv("MINIO_ROOT_USER", "admin")
	t.Setenv("MINIO_ROOT_PASSWORD", "secret")
	t.Setenv("LOG_TARGETS", "console,file")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "supabase", cfg.Database.Provider)
	assert.Equal(t, "postgres://u:p@localhost:5432/db", cfg.Database.Postgres.URI)
	assert.Equal(t, "mood_", cfg.Database.Postgres.TablePrefix)
	assert.Equal(t, "mood_", cfg.Database.Mongo.CollectionPrefix)
	assert.Equal(t, "admin", cfg.Storage.Minio.AccessKey)
	assert.Equal(t, "secret", cfg.Storage.Minio.SecretKey)
	assert.Equal(t, []string{"console", "file"}, cfg.Logger.Targets)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Chdir(dir)
	t.Cleanup(func() { _ = os.Unsetenv("LOG_LEVEL") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadSkipsDotEnvInProd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("ENVIRONMENT", "prod")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load("./does-not-exist.yml")
		require.Error(t, err)
		assert.IsType(t, Error{}, err)
	})

	t.Run("postgres without uri", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("DB_PROVIDER", "postgres")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DATABASE_URI")
	})

	t.Run("unknown storage provider", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("STORAGE_PROVIDER", "floppy")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown storage provider")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yml")
		require.NoError(t, os.WriteFile(path, []byte("http: [unclosed"), 0o600))

		_, err := Load(path)
		assert.IsType(t, Error{}, err)
	})
}
