package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/darkhorse/internal/randutil"
)

// Option configures an Engine during creation.
type Option func(*config)

type config struct {
	rng    randutil.Source
	logger *log.Logger
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = randutil.New(randutil.NewSeed())
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	return cfg
}

// WithRand sets the random source used for shuffles and exchange draws.
func WithRand(rng randutil.Source) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithSeed seeds a deterministic random source.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = randutil.New(seed)
	}
}

// WithLogger sets the logger transitions report to. Default discards.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
