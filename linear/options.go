package linear

import (
	"github.com/YuminosukeSato/linsys/pkg/log"
)

// Option はソルバーの動作を設定する関数
type Option func(*config)

type config struct {
	logger log.Logger
}

// WithLogger sets the logger receiving debug traces of intermediate
// matrices. Without it the package-wide log.GetLogger() is used.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.GetLogger()
	}
	return cfg
}
