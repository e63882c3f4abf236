package skipset

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultInitialHeight is the level bound a new or cleared set starts with.
const DefaultInitialHeight = 4

// Config holds configuration for a SkipListSet.
type Config struct {
	// initialHeight is the level bound of a new or cleared set
	initialHeight int

	// seed drives the height draws; zero means seed from the clock
	seed uint64

	// removePolicy is the default cursor behaviour after Iterator.Remove
	removePolicy RemovePolicy

	logger logrus.FieldLogger
}

// Option configures a SkipListSet.
type Option func(*Config)

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{
		initialHeight: DefaultInitialHeight,
		removePolicy:  ResetToHead,
		logger:        discardLogger(),
	}
}

// WithInitialHeight sets the level bound a new or cleared set starts with.
// Values outside [1, MaxLevel] are ignored.
func WithInitialHeight(height int) Option {
	return func(c *Config) {
		if height >= 1 && height <= MaxLevel {
			c.initialHeight = height
		}
	}
}

// WithSeed makes height draws deterministic.
func WithSeed(seed uint64) Option {
	return func(c *Config) { c.seed = seed }
}

// WithRemovePolicy sets the default cursor behaviour of iterators created
// by the set after a positional removal.
func WithRemovePolicy(p RemovePolicy) Option {
	return func(c *Config) { c.removePolicy = p }
}

// WithLogger sets the logger used for structural events (height growth,
// clear, rebalance). Nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Config) {
		if l != nil {
			c.logger = l
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
