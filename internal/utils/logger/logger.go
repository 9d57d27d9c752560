package logger

import (
	"os"

	"golang.org/x/exp/slog"

	"cloudvault/internal/app/server/config"
)

// New builds a slog.Logger for the given environment.
// Local runs get a human-readable text handler at debug level,
// everything else logs JSON.
func New(env string) *slog.Logger {
	var handler slog.Handler

	switch env {
	case config.EnvLocal:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	case config.EnvDev:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return slog.New(handler)
}
