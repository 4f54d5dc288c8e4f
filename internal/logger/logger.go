package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/segyhp/loan-earnings/internal/config"
)

// New builds a slog.Logger from the logging configuration. Unknown levels
// fall back to info.
func New(cfg config.LoggingConfig, component string) *slog.Logger {
	return newWithWriter(os.Stdout, cfg, component)
}

func newWithWriter(w io.Writer, cfg config.LoggingConfig, component string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With("component", component)
}

// ParseLevel maps a LOG_LEVEL value to a slog level
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
