// Package logger holds the process-wide structured logger.
// Callers log with a message followed by key/value pairs:
//
//	logger.Info("post created", "id", post.ID, "kind", post.Kind)
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	TargetConsole = "console"
	TargetStdout  = "stdout"
	TargetFile    = "file"
)

var (
	mu     sync.RWMutex
	global = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
)

// InitGlobalLogger replaces the global logger using cfg.
// Unknown levels fall back to info, unknown targets are ignored.
func InitGlobalLogger(cfg *Config) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	writers := make([]io.Writer, 0, len(cfg.Targets))
	for _, target := range cfg.Targets {
		switch target {
		case TargetConsole:
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		case TargetStdout:
			writers = append(writers, os.Stdout)
		case TargetFile:
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.Filename,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
			})
		}
	}

	if len(writers) == 0 {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	l := zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).With().Timestamp().Logger()

	mu.Lock()
	global = l
	mu.Unlock()
}

func get() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	l := global

	return &l
}

func Debug(msg string, keysAndValues ...any) {
	emit(get().Debug(), msg, keysAndValues)
}

func Info(msg string, keysAndValues ...any) {
	emit(get().Info(), msg, keysAndValues)
}

func Warn(msg string, keysAndValues ...any) {
	emit(get().Warn(), msg, keysAndValues)
}

func Error(msg string, keysAndValues ...any) {
	emit(get().Error(), msg, keysAndValues)
}

func emit(e *zerolog.Event, msg string, keysAndValues []any) {
	if e == nil {
		return
	}

	if len(keysAndValues) > 0 {
		e = e.Fields(keysAndValues)
	}

	e.Msg(msg)
}
