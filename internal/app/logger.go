package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/todo-backend/internal/config"
)

// NewLogger creates the process logger from cfg, writes it to stderr and
// installs it as the slog default.
//
// Format "json" produces one JSON object per line with durations rendered
// as strings ("1.5ms"); anything else produces text lines with source info.
// Level is one of debug, info, warn, error; anything else means info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       parseLevel(cfg.Level),
			ReplaceAttr: durationString,
		}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: true,
	}))
}

// durationString renders duration values the way time.Duration prints them
// instead of as integer nanoseconds.
func durationString(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindDuration {
		return slog.String(a.Key, a.Value.Duration().String())
	}
	return a
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
