package log

import "context"

// loggerKey is the key used to store the logger in the context.
type loggerKey struct{}

// WithContextLogger returns a context carrying the given logger. Operations
// performed with this context log through it instead of the client's logger.
func WithContextLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetContextLogger retrieves the logger from the context, or nil if none is
// stored.
func GetContextLogger(ctx context.Context) Logger {
	logger, ok := ctx.Value(loggerKey{}).(Logger)
	if !ok {
		return nil
	}
	return logger
}

// FromContext returns the logger from the context, or a no-op logger if none
// is set, so callers always have a logger to work with.
func FromContext(ctx context.Context) Logger {
	if logger := GetContextLogger(ctx); logger != nil {
		return logger
	}
	return Noop()
}
