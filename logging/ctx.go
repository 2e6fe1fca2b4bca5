package logging

import "context"

type contextKey string

const loggerKey contextKey = "logger"

// WithLogger returns a derived context with associated logger factory.
func WithLogger(ctx context.Context, l LoggerFactory) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}
