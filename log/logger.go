// Package log defines the diagnostic sink for Grokipedia clients. The client
// holds no global logger state: a Logger is injected at construction or via
// the context, and a no-op logger is used when none is provided.
package log

// Logger is a minimal logging interface for Grokipedia clients.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Noop returns a Logger that discards everything.
func Noop() Logger {
	return noopLogger{}
}

// noopLogger implements Logger but does nothing.
type noopLogger struct{}

func (noopLogger) Debug(msg string, keysAndValues ...any) {}
func (noopLogger) Info(msg string, keysAndValues ...any)  {}
func (noopLogger) Warn(msg string, keysAndValues ...any)  {}
func (noopLogger) Error(msg string, keysAndValues ...any) {}
