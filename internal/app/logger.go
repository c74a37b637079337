package app

import (
	"io"
	"log/slog"
	"strings"
)

// parseLevel maps a level name (debug, info, warn, error; any case) to a
// slog.Level.
func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(name))
	return level, err
}

// newLogger builds the App's own logger writing to outW. The global default
// logger is left alone so several Apps can run side by side in tests.
// Unknown levels fall back to info and unknown formats to text.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, err := parseLevel(levelStr)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(outW, opts)
	if strings.EqualFold(formatStr, "json") {
		handler = slog.NewJSONHandler(outW, opts)
	}
	return slog.New(handler)
}
