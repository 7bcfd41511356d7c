package stats

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/chifit/errs"
)

// DurbinWatson calculates the Durbin-Watson statistic of a residual sequence.
//
//	d ≈ 2: no first-order autocorrelation
//	d < 2: positive autocorrelation (residuals drift, the line misses a trend)
//	d > 2: negative autocorrelation
func DurbinWatson(residuals []float64) (float64, error) {
	n := len(residuals)
	if n < 2 {
		return 0, errors.Wrapf(errs.ErrShape, "need at least 2 residuals, got %d", n)
	}

	numerator := 0.0
	for i := 1; i < n; i++ {
		diff := residuals[i] - residuals[i-1]
		numerator += diff * diff
	}
	denominator := floats.Dot(residuals, residuals)

	if denominator == 0 {
		return 0, errors.Wrap(errs.ErrDegenerateInput, "all residuals are zero")
	}
	return numerator / denominator, nil
}

// Autocorrelation returns the sample autocorrelation of values at the given
// lag, normalized by the lag-0 sum of squares.
func Autocorrelation(values []float64, lag int) (float64, error) {
	n := len(values)
	if lag < 0 || lag >= n {
		return 0, errors.Wrapf(errs.ErrIndex, "lag %d not in [0, %d)", lag, n)
	}

	mean := stat.Mean(values, nil)
	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	if variance == 0 {
		return 0, errors.Wrap(errs.ErrDegenerateInput, "series has zero variance")
	}

	sum := 0.0
	for i := lag; i < n; i++ {
		sum += (values[i] - mean) * (values[i-lag] - mean)
	}
	return sum / variance, nil
}
