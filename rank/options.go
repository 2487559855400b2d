package rank

import "log/slog"

type options struct {
	logger *slog.Logger
}

// Option configures index construction.
type Option func(*options)

// WithLogger sets the logger used to report index construction at debug level.
// If nil is passed, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
