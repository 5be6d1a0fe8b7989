// Package logger configures the process-wide zerolog logger the rest of the
// code reaches through the zerolog/log globals.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Level      zerolog.Level
	TimeFormat string
	Output     io.Writer
}

// Setup installs the global logger. A nil config gives the development
// default: human-readable console output at info level.
func Setup(cfg *Config) {
	if cfg == nil {
		cfg = &Config{
			Level:      zerolog.InfoLevel,
			TimeFormat: time.RFC3339,
			Output:     os.Stdout,
		}
	}

	output := zerolog.ConsoleWriter{
		Out:        cfg.Output,
		TimeFormat: cfg.TimeFormat,
	}

	log.Logger = zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Caller().
		Logger()
}
