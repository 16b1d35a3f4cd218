package app

import (
	"io"
	"log/slog"
)

// newLogger creates the run's logger. It does not set the global logger.
// Unknown levels fall back to info and any format other than "json" is text;
// the CLI has already rejected bad values by the time this runs.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
