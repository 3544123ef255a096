package logger

import (
	"context"
	"log/slog"
)

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

// Logger context keys
const (
	LoggerKey ContextKey = "logger"
)

// FromContext retrieves the logger from the context
// If no logger is found, it returns the default logger
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// WithSubmUuid scopes the logger in the context to a single submission
func WithSubmUuid(ctx context.Context, submUuid string) context.Context {
	logger := FromContext(ctx)
	loggerWithSubmUuid := logger.With("subm_uuid", submUuid)
	return WithLogger(ctx, loggerWithSubmUuid)
}
