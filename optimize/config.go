package optimize

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sartorproj/chifit/errs"
)

// Config holds configuration for the Nelder-Mead minimizer.
type Config struct {
	MaxIter      int     // Iteration cap (default: 200 per dimension when 0)
	FTol         float64 // Spread of vertex values, relative to the best value (default: 1e-4)
	XTol         float64 // Spread of vertex coordinates, relative to the best vertex (default: 1e-4)
	NonzeroDelta float64 // Relative step for non-zero start coordinates (default: 0.05)
	ZeroDelta    float64 // Absolute step for zero start coordinates (default: 0.00025)
	Reflection   float64 // alpha (default: 1)
	Expansion    float64 // gamma (default: 2)
	Contraction  float64 // rho (default: 0.5)
	Shrink       float64 // sigma (default: 0.5)
	Parallel     bool    // Evaluate independent vertices concurrently
	Logger       logrus.FieldLogger
}

// DefaultConfig returns the default minimizer configuration.
func DefaultConfig() *Config {
	return &Config{
		FTol:         1e-4,
		XTol:         1e-4,
		NonzeroDelta: 0.05,
		ZeroDelta:    0.00025,
		Reflection:   1,
		Expansion:    2,
		Contraction:  0.5,
		Shrink:       0.5,
	}
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	switch {
	case c.MaxIter < 0:
		return errors.Wrapf(errs.ErrInvalidConfig, "max iterations must not be negative, got %d", c.MaxIter)
	case c.FTol <= 0:
		return errors.Wrapf(errs.ErrInvalidConfig, "ftol must be positive, got %g", c.FTol)
	case c.XTol <= 0:
		return errors.Wrapf(errs.ErrInvalidConfig, "xtol must be positive, got %g", c.XTol)
	case c.NonzeroDelta == 0 || c.ZeroDelta == 0:
		return errors.Wrap(errs.ErrInvalidConfig, "initial simplex steps must be non-zero")
	case c.Reflection <= 0:
		return errors.Wrapf(errs.ErrInvalidConfig, "reflection must be positive, got %g", c.Reflection)
	case c.Expansion <= 1 || c.Expansion < c.Reflection:
		return errors.Wrapf(errs.ErrInvalidConfig, "expansion must exceed 1 and reflection, got %g", c.Expansion)
	case c.Contraction <= 0 || c.Contraction >= 1:
		return errors.Wrapf(errs.ErrInvalidConfig, "contraction must be in (0, 1), got %g", c.Contraction)
	case c.Shrink <= 0 || c.Shrink >= 1:
		return errors.Wrapf(errs.ErrInvalidConfig, "shrink must be in (0, 1), got %g", c.Shrink)
	}
	return nil
}

func (c *Config) maxIter(dim int) int {
	if c.MaxIter > 0 {
		return c.MaxIter
	}
	return 200 * dim
}

func (c *Config) logger() logrus.FieldLogger {
	if c.Logger != nil {
		return c.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
