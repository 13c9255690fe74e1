// Package logging builds the application logger.
package logging

import (
	"strings"

	"github.com/go-chi/httplog"
	"github.com/rs/zerolog"

	"github.com/farellandr/bookcatalog/config"
)

const serviceName = "bookcatalog"

// New returns a zerolog logger for cfg. Unknown levels fall back to info.
func New(cfg config.Log) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	logger := httplog.NewLogger(serviceName, httplog.Options{
		LogLevel: level.String(),
		JSON:     cfg.JSON,
		Concise:  !cfg.JSON,
	})
	return logger.Level(level)
}
