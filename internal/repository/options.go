package repository

import "go.uber.org/zap"

type options struct {
	logger *zap.Logger
}

// Option configures repositories built by NewRepositories
type Option func(*options)

// WithLogger sets the logger used for row-level warnings
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
