package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"moodfeed/internal/infrastructure/broker"
	"moodfeed/internal/infrastructure/database"
	"moodfeed/internal/infrastructure/storage"
	"moodfeed/internal/presentation/router"
	"moodfeed/pkg/logger"
)

const EnvProd = "prod"

// Config represents the configs used by services on system.
type Config struct {
	Environment string          `yaml:"environment" env:"ENVIRONMENT" env-default:"dev"`
	HTTP        HTTPConfig      `yaml:"http"`
	Database    database.Config `yaml:"database"`
	Storage     storage.Config  `yaml:"storage"`
	Broker      broker.Config   `yaml:"broker"`
	Logger      logger.Config   `yaml:"logger"`
}

type HTTPConfig struct {
	Address         string        `yaml:"address"                   env:"HTTP_ADDRESS" env-default:":3000"`
	ShutdownTimeout int64         `yaml:"shutdown_timeout_in_ms"    env-default:"10000"`
	Router          router.Config `yaml:"router"`
}

// Load reads the optional YAML file at path, then .env (outside prod), then the
// process environment. Later sources win; defaults fill whatever is still empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(config); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = config.Environment
	}
	if env != EnvProd {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if err := config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.HTTP.Address == "" {
		return errors.New("http address is required")
	}

	dbProvider, err := database.ResolveProvider(c.Database.Provider)
	if err != nil {
		return err
	}
	switch {
	case dbProvider == database.ProviderPostgres && c.Database.Postgres.URI == "":
		return errors.New("DATABASE_URI is required for the postgres provider")
	case dbProvider == database.ProviderMongo && c.Database.Mongo.URI == "":
		return errors.New("MONGO_URI is required for the mongo provider")
	}

	if _, err := storage.ResolveProvider(c.Storage.Provider); err != nil {
		return err
	}

	return nil
}
