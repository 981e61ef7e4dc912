package broker

type Config struct {
	// URI is a redis:// URL. Empty disables event publishing.
	URI        string `yaml:"uri"         env:"BROKER_URI"`
	StreamName string `yaml:"stream_name" env:"BROKER_STREAM" env-default:"moodfeed:events"`
	MaxLen     int64  `yaml:"max_len"     env-default:"1000"`

	PublisherConfig PublisherConfig `yaml:"publisher"`
	ReaderConfig    ReaderConfig    `yaml:"reader"`
}

type PublisherConfig struct {
	Timeout int `yaml:"timeout_in_ms" env-default:"1000"`
}

type ReaderConfig struct {
	Timeout int `yaml:"timeout_in_ms" env-default:"2000"`
}
