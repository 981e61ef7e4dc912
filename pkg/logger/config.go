package logger

type Config struct {
	Level      string   `yaml:"level"       env:"LOG_LEVEL"   env-default:"info"`
	Targets    []string `yaml:"targets"     env:"LOG_TARGETS" env-default:"console"`
	Filename   string   `yaml:"filename"    env:"LOG_FILE"    env-default:"moodfeed.log"`
	MaxSize    int      `yaml:"max_size"    env-default:"10"`
	MaxBackups int      `yaml:"max_backups" env-default:"3"`
	MaxAge     int      `yaml:"max_age"     env-default:"28"`
	Compress   bool     `yaml:"compress"`
}
