package assign

import "log/slog"

// Option configures a Types.
type Option func(*config) error

type config struct {
	// logger receives debug records for each closure computation.
	// If nil, logging is disabled.
	logger *slog.Logger
}

// WithLogger sets a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

func newConfig(opts []Option) (*config, error) {
	c := &config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// log returns the configured logger, or one that discards everything.
func (c *config) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.New(slog.DiscardHandler)
}
