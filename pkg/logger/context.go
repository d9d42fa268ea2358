package logger

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// With returns a context whose logger carries the extra fields. Fields
// accumulate across nested calls and are resolved against the process logger
// at read time, so callers may build contexts before Init runs.
func With(ctx context.Context, fields ...any) context.Context {
	base := fieldsFrom(ctx)
	merged := make([]any, 0, len(base)+len(fields))
	merged = append(merged, base...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, ctxKey{}, merged)
}

// From returns the process logger extended with the fields stored in ctx.
func From(ctx context.Context) *slog.Logger {
	fields := fieldsFrom(ctx)
	if len(fields) == 0 {
		return LoggerWrapper()
	}
	return LoggerWrapper().With(fields...)
}

func fieldsFrom(ctx context.Context) []any {
	if f, ok := ctx.Value(ctxKey{}).([]any); ok {
		return f
	}
	return nil
}
