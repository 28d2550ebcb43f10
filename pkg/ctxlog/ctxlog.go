// Package ctxlog carries a zap Logger in a Context, and
// builds zap fields for durations.
package ctxlog

import (
	"context"

	"go.uber.org/zap" // Logging.

	"github.com/mintel/duration/pkg/duration"
)

type loggerKeyType struct{}

var (
	// loggerKey is a unique key to embed a zap.Logger in a Context.
	loggerKey = loggerKeyType{}

	// nop logger to ensure L always returns something
	nop = zap.NewNop()
)

// WithLogger embeds logger in the given Context. Later the logger can be
// obtained by L or S.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithFields adds the given fields to the Logger embedded in ctx.
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	return WithLogger(ctx, L(ctx).With(fields...))
}

// WithName adds the given name to the Logger embedded in ctx.
func WithName(ctx context.Context, name string) context.Context {
	return WithLogger(ctx, L(ctx).Named(name))
}

// L returns the Logger embedded in ctx, or a nop Logger
// if nothing is embedded.
func L(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return nop
}

// S is like L, but returns a SugaredLogger.
func S(ctx context.Context) *zap.SugaredLogger {
	return L(ctx).Sugar()
}

// Duration returns a zap Field that logs d as an object
// with its nanosecond count and display form.
func Duration(key string, d duration.Duration) zap.Field {
	return zap.Object(key, d)
}

// Durations returns a zap Field that logs ds by display form.
func Durations(key string, ds []duration.Duration) zap.Field {
	strs := make([]string, len(ds))
	for i, d := range ds {
		strs[i] = d.String()
	}
	return zap.Strings(key, strs)
}
