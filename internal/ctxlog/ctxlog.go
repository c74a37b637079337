// Package ctxlog threads the run's slog.Logger through context.Context, so
// helpers deep in a step log through the App's isolated logger without
// taking it as a parameter.
package ctxlog

import (
	"context"
	"log/slog"
)

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx. Library code is also called
// from tests and other hosts that never install one, so a missing logger
// falls back to slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// With stores a child logger carrying args, e.g. the name of the running
// setup.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}
