package linfit

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sartorproj/chifit/dataset"
	"github.com/sartorproj/chifit/errs"
	"github.com/sartorproj/chifit/optimize"
)

// Params is the parameter vector of the line y = Slope*x + Intercept.
type Params struct {
	Slope     float64 `json:"slope" yaml:"slope"`
	Intercept float64 `json:"intercept" yaml:"intercept"`
}

// ParamsFromVector converts a minimizer vector {slope, intercept}.
func ParamsFromVector(v []float64) (Params, error) {
	if len(v) != 2 {
		return Params{}, errors.Wrapf(errs.ErrShape, "line has 2 parameters, got %d", len(v))
	}
	return Params{Slope: v[0], Intercept: v[1]}, nil
}

// Vector returns {slope, intercept}.
func (p Params) Vector() []float64 {
	return []float64{p.Slope, p.Intercept}
}

// At evaluates the line at x.
func (p Params) At(x float64) float64 {
	return p.Slope*x + p.Intercept
}

// String formats the fit equation.
func (p Params) String() string {
	return fmt.Sprintf("y = %.3fx + %.3f", p.Slope, p.Intercept)
}

// ChiSquare returns the weighted chi-square of the line p over ds:
//
//	sum_i ((y_i - (m*x_i + c)) / w_i)^2
//
// where w_i is the y error of point i, or the observed y_i when that error is
// zero. A point with both a zero error and a zero y has no usable weight and
// yields errs.ErrDivisionByZero.
func ChiSquare(p Params, ds *dataset.Dataset) (float64, error) {
	sum := 0.0
	for i := 0; i < ds.Len(); i++ {
		x, y, _, yErr, err := ds.Point(i)
		if err != nil {
			return 0, err
		}

		weight := yErr
		if weight == 0 {
			weight = y
		}
		if weight == 0 {
			return 0, errors.Wrapf(errs.ErrDivisionByZero, "point %d has zero y and zero y error", i)
		}

		term := (y - p.At(x)) / weight
		sum += term * term
	}
	return sum, nil
}

// Objective adapts ChiSquare over ds to the minimizer's vector form.
func Objective(ds *dataset.Dataset) optimize.Objective {
	return func(v []float64) (float64, error) {
		p, err := ParamsFromVector(v)
		if err != nil {
			return 0, err
		}
		return ChiSquare(p, ds)
	}
}
