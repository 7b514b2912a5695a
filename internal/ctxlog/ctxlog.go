// Package ctxlog carries the application's slog.Logger through
// context.Context, so code deep in a preset chain or a nested project logs
// with the handler, level, and attributes chosen further up.
package ctxlog

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// With returns a copy of ctx whose logger adds args to every record, as
// slog.Logger.With does. Callers use it to tag the records of one
// configuration file or one nested project.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

// FromContext returns the logger stored in ctx. Library code may be called
// without one, for example from tests, so a missing logger yields
// slog.Default() instead of failing.
func FromContext(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey{}).(*slog.Logger)
	if logger == nil {
		return slog.Default()
	}
	return logger
}
