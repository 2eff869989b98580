package logger

import (
	"io"
	"log/slog"
	"strings"
)

type Options struct {
	Service string
	Env     string
	Level   string
}

// New builds the process logger. A CLI writes its real output to
// stdout, so logs go wherever w points (stderr in practice): JSON
// outside dev, human-readable text in dev.
func New(w io.Writer, opts Options) *slog.Logger {
	level := parseLevel(opts.Level)

	var h slog.Handler
	if opts.Env == "dev" {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}

	base := slog.New(h).With(
		"service", opts.Service,
		"env", opts.Env,
	)

	slog.SetDefault(base)
	return base
}

func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
