// Package logging provides loggers for the tempdir library.
package logging

import (
	"context"

	"go.uber.org/zap"
)

// Logger is an interface used by the tempdir codebase.
type Logger = *zap.SugaredLogger

// LoggerFactory retrieves a named logger for a given module.
type LoggerFactory func(module string) Logger

// NullLogger discards all log messages.
var NullLogger = zap.NewNop().Sugar() //nolint:gochecknoglobals

// Module returns a function that provides a logger for a given module when
// provided with a context.
func Module(module string) func(ctx context.Context) Logger {
	return func(ctx context.Context) Logger {
		if l, ok := ctx.Value(loggerKey).(LoggerFactory); ok && l != nil {
			return l(module)
		}

		return NullLogger
	}
}
