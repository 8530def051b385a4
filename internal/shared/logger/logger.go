package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// New builds the slog logger for env writing to w
func New(env string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	var handler slog.Handler
	switch env {
	case "production", "prod":
		// Production: JSON format, info level
		handler = slog.NewJSONHandler(w, opts)
	case "local", "dev", "development":
		// Development: Text format, debug level
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Setup configures the global slog logger based on environment
func Setup(env string) {
	logger := New(env, os.Stdout)
	slog.SetDefault(logger)

	slog.Info("Logger 초기화", "env", env, "debug", logger.Enabled(context.Background(), slog.LevelDebug))
}
