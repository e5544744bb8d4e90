// Package log provides structured logging (slog) configuration for
// ScriptGuard hosts, plus a recording handler for asserting on audit
// output in tests.
package log

import (
	"io"
	"log/slog"
	"os"
)

// HandlerOption configures the handler built by NewHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	out       io.Writer
	level     slog.Level
	addSource bool
}

// defaultHandlerConfig returns the default configuration.
func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		out:   os.Stderr,
		level: slog.LevelInfo,
	}
}

// WithLevel sets the minimum log level to report.
func WithLevel(level slog.Level) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// WithOutput sets the destination writer. Defaults to stderr.
func WithOutput(out io.Writer) HandlerOption {
	return func(c *handlerConfig) {
		c.out = out
	}
}

// WithSource enables reporting of source location (file/line).
func WithSource(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.addSource = enabled
	}
}

// NewHandler creates a text slog.Handler with the given options.
func NewHandler(opts ...HandlerOption) slog.Handler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return slog.NewTextHandler(cfg.out, &slog.HandlerOptions{
		Level:     cfg.level,
		AddSource: cfg.addSource,
	})
}

// NewLogger creates a *slog.Logger backed by NewHandler.
func NewLogger(opts ...HandlerOption) *slog.Logger {
	return slog.New(NewHandler(opts...))
}
