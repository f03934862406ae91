package config

import (
	"io"
	"log/slog"
)

// NewLogger builds the application logger: human-readable text while
// developing, JSON everywhere else.
func NewLogger(app AppConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: app.LogLevel}

	var handler slog.Handler
	switch app.Env {
	case EnvDevelopment:
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("env", app.Env))
}
