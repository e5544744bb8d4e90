package host

import (
	"log/slog"

	"github.com/scriptguard-dev/scriptguard/hostfuncs"
)

// Option defines a functional option for configuring the Executor.
type Option func(*Executor)

// WithHostFunctions configures the executor with a host function registry.
func WithHostFunctions(registry *hostfuncs.HandlerRegistry) Option {
	return func(e *Executor) {
		e.registry = registry
	}
}

// WithLogger sets the logger script log messages are forwarded to.
// Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(e *Executor) {
		e.log = log
	}
}
