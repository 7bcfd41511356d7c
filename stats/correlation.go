package stats

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/chifit/errs"
)

// Pearson returns the Pearson correlation coefficient of xs and ys,
// cov(x, y) / (std(x) * std(y)), in [-1, 1].
//
// It fails with errs.ErrShape when the series differ in length or hold fewer
// than two values, and with errs.ErrDegenerateInput when either series is
// constant.
func Pearson(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, errors.Wrapf(errs.ErrShape, "series lengths differ: %d and %d", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return 0, errors.Wrapf(errs.ErrShape, "need at least 2 values, got %d", len(xs))
	}
	if constant(xs) {
		return 0, errors.Wrap(errs.ErrDegenerateInput, "x series has zero variance")
	}
	if constant(ys) {
		return 0, errors.Wrap(errs.ErrDegenerateInput, "y series has zero variance")
	}

	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		return 0, errors.Wrap(errs.ErrDegenerateInput, "correlation undefined")
	}
	return math.Max(-1, math.Min(1, r)), nil
}

func constant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
