// Package util carries small cross-cutting helpers, currently the process
// logger.
package util

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

// InitLogger installs a JSON slog handler at info level and makes it the
// process default. Call once from main before any other wiring logs.
func InitLogger() {
	Logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(Logger)
}

// GetLogger returns the process logger, initializing it on first use so
// tests that skip main still get structured output.
func GetLogger() *slog.Logger {
	if Logger == nil {
		InitLogger()
	}
	return Logger
}
