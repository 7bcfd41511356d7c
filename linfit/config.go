package linfit

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sartorproj/chifit/errs"
	"github.com/sartorproj/chifit/optimize"
)

// Config holds configuration for a line fit.
type Config struct {
	Start     Params           // Initial guess (default: slope 1, intercept 0)
	Optimizer *optimize.Config // Minimizer settings (default: optimize.DefaultConfig())
	Restarts  int              // Re-seed from the last best point this many times while not converged
	Logger    logrus.FieldLogger
}

// DefaultConfig returns the default fit configuration.
func DefaultConfig() *Config {
	return &Config{
		Start:     Params{Slope: 1, Intercept: 0},
		Optimizer: optimize.DefaultConfig(),
	}
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	if c.Restarts < 0 {
		return errors.Wrapf(errs.ErrInvalidConfig, "restarts must not be negative, got %d", c.Restarts)
	}
	if c.Optimizer != nil {
		return c.Optimizer.Validate()
	}
	return nil
}

func (c *Config) logger() logrus.FieldLogger {
	if c.Logger != nil {
		return c.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func (c *Config) optimizer(log logrus.FieldLogger) *optimize.Config {
	cfg := optimize.DefaultConfig()
	if c.Optimizer != nil {
		*cfg = *c.Optimizer
	}
	if cfg.Logger == nil {
		cfg.Logger = log
	}
	return cfg
}
