package linfit

import (
	"math"

	"github.com/pkg/errors"

	"github.com/sartorproj/chifit/dataset"
	"github.com/sartorproj/chifit/errs"
)

// Residuals returns y_i - (m*x_i + c) for every point of ds, in order.
func Residuals(p Params, ds *dataset.Dataset) []float64 {
	xs := ds.Xs()
	ys := ds.Ys()

	out := make([]float64, len(xs))
	for i := range xs {
		out[i] = ys[i] - p.At(xs[i])
	}
	return out
}

// CrossAxisCount returns how many residuals lie within their point's y error
// bar, i.e. |r_i| - yErr_i <= 0. These are the points whose error bar crosses
// the zero line of a residual plot.
func CrossAxisCount(residuals []float64, ds *dataset.Dataset) (int, error) {
	if len(residuals) != ds.Len() {
		return 0, errors.Wrapf(errs.ErrShape, "%d residuals for %d points", len(residuals), ds.Len())
	}

	count := 0
	for i, r := range residuals {
		yErr, err := ds.YErr(i)
		if err != nil {
			return 0, err
		}
		if math.Abs(r)-yErr <= 0 {
			count++
		}
	}
	return count, nil
}
