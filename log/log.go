package log

import (
	"io"
	"log/slog"
)

type Config struct {
	Level     int  `mapstructure:"level"`
	AddSource bool `mapstructure:"add_source"`
}

// New builds a JSON slog logger from the config.
func New(w io.Writer, c Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     slog.Level(c.Level),
		AddSource: c.AddSource,
	}))
}
