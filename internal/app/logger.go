package app

import (
	"fmt"
	"io"
	"log/slog"
)

// parseLevel maps a level name onto slog's levels. Names are the ones slog
// itself prints ("debug", "info", "warn", "error"), in any case.
func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", name)
	}
	return level, nil
}

// newLogger builds the logger of one App from cfg. The global slog default
// is left untouched, so several apps can log independently.
func newLogger(cfg *Config, w io.Writer) *slog.Logger {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
