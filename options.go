package cubesolve

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Option configures Gateway behavior.
type Option func(*config)

type config struct {
	verify  bool
	timeout time.Duration
	logger  *logrus.Logger
}

func defaultConfig() *config {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &config{
		verify:  true,
		timeout: 0,
		logger:  logger,
	}
}

// WithVerification enables or disables checking engine answers.
// When enabled (default), the returned moves are replayed on the input
// state and an answer that does not solve it is reported as an engine
// failure.
func WithVerification(enabled bool) Option {
	return func(c *config) {
		c.verify = enabled
	}
}

// WithTimeout bounds each Solve call. Zero (default) leaves the bound to
// the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithLogger sets the logger used for solve diagnostics.
// By default nothing is logged.
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
