package resolve

import (
	"fmt"
	"log/slog"
)

// Option configures a Resolver.
type Option func(*config) error

type config struct {
	logger    *slog.Logger
	cacheSize int
}

// WithLogger sets a structured logger. Selections and resolutions are
// logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

// WithCacheSize bounds the selection cache to n entries. Zero, the default,
// means unbounded.
func WithCacheSize(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return fmt.Errorf("cache size must not be negative, got %d", n)
		}
		c.cacheSize = n
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

func (c *config) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.New(slog.DiscardHandler)
}
