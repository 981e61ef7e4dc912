package minio

type Config struct {
	Endpoint      string `yaml:"endpoint"        env:"MINIO_ENDPOINT"        env-default:"localhost:9000"`
	AccessKey     string `yaml:"-"               env:"MINIO_ROOT_USER"`
	SecretKey     string `yaml:"-"               env:"MINIO_ROOT_PASSWORD"`
	UseSSL        bool   `yaml:"use_ssl"         env:"MINIO_USE_SSL"`
	Bucket        string `yaml:"bucket"          env:"STORAGE_BUCKET"        env-default:"uploads"`
	PublicBaseURL string `yaml:"public_base_url" env:"STORAGE_PUBLIC_BASE_URL"`

	UploaderConfig UploaderConfig `yaml:"uploader"`
	RemoverConfig  RemoverConfig  `yaml:"remover"`
}

type UploaderConfig struct {
	Timeout int64 `yaml:"timeout_in_ms" env-default:"30000"`
}

type RemoverConfig struct {
	Timeout int64 `yaml:"timeout_in_ms" env-default:"5000"`
}
