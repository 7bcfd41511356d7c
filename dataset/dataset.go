package dataset

import (
	"math"

	"github.com/pkg/errors"

	"github.com/sartorproj/chifit/errs"
)

// MinPoints is the smallest dataset a fit accepts.
const MinPoints = 2

// Dataset holds N measurements (x, y, x error, y error) in parallel columns.
// A Dataset is immutable once built and can be shared between goroutines.
type Dataset struct {
	Name string
	x    []float64
	y    []float64
	xErr []float64
	yErr []float64
}

// New creates a dataset from four equal-length columns. The slices are copied.
func New(xs, ys, xErrs, yErrs []float64) (*Dataset, error) {
	n := len(xs)
	if len(ys) != n || len(xErrs) != n || len(yErrs) != n {
		return nil, errors.Wrapf(errs.ErrShape,
			"column lengths differ: x=%d y=%d xerr=%d yerr=%d", len(xs), len(ys), len(xErrs), len(yErrs))
	}
	if n < MinPoints {
		return nil, errors.Wrapf(errs.ErrShape, "need at least %d points, got %d", MinPoints, n)
	}

	return &Dataset{
		x:    clone(xs),
		y:    clone(ys),
		xErr: clone(xErrs),
		yErr: clone(yErrs),
	}, nil
}

// FromRecords builds a dataset from rows of the form {x, y, xerr, yerr}.
func FromRecords(records [][4]float64) (*Dataset, error) {
	xs := make([]float64, len(records))
	ys := make([]float64, len(records))
	xErrs := make([]float64, len(records))
	yErrs := make([]float64, len(records))
	for i, r := range records {
		xs[i], ys[i], xErrs[i], yErrs[i] = r[0], r[1], r[2], r[3]
	}
	return New(xs, ys, xErrs, yErrs)
}

// WithName returns a copy of the dataset carrying the given name.
func (d *Dataset) WithName(name string) *Dataset {
	c := *d
	c.Name = name
	return &c
}

// Len returns the number of points.
func (d *Dataset) Len() int {
	return len(d.x)
}

// X returns the independent value of point i.
func (d *Dataset) X(i int) (float64, error) {
	return d.at(d.x, i)
}

// Y returns the observed value of point i.
func (d *Dataset) Y(i int) (float64, error) {
	return d.at(d.y, i)
}

// XErr returns the x uncertainty of point i.
func (d *Dataset) XErr(i int) (float64, error) {
	return d.at(d.xErr, i)
}

// YErr returns the y uncertainty of point i.
func (d *Dataset) YErr(i int) (float64, error) {
	return d.at(d.yErr, i)
}

// Point returns all four values of point i.
func (d *Dataset) Point(i int) (x, y, xErr, yErr float64, err error) {
	if i < 0 || i >= d.Len() {
		return 0, 0, 0, 0, d.indexError(i)
	}
	return d.x[i], d.y[i], d.xErr[i], d.yErr[i], nil
}

// Xs returns a copy of the x column.
func (d *Dataset) Xs() []float64 { return clone(d.x) }

// Ys returns a copy of the y column.
func (d *Dataset) Ys() []float64 { return clone(d.y) }

// XErrs returns a copy of the x error column.
func (d *Dataset) XErrs() []float64 { return clone(d.xErr) }

// YErrs returns a copy of the y error column.
func (d *Dataset) YErrs() []float64 { return clone(d.yErr) }

// Min returns the smallest value across all four columns.
func (d *Dataset) Min() float64 {
	min := math.Inf(1)
	for _, col := range d.columns() {
		for _, v := range col {
			if v < min {
				min = v
			}
		}
	}
	return min
}

// Max returns the largest value across all four columns.
func (d *Dataset) Max() float64 {
	max := math.Inf(-1)
	for _, col := range d.columns() {
		for _, v := range col {
			if v > max {
				max = v
			}
		}
	}
	return max
}

func (d *Dataset) columns() [][]float64 {
	return [][]float64{d.x, d.y, d.xErr, d.yErr}
}

func (d *Dataset) at(col []float64, i int) (float64, error) {
	if i < 0 || i >= len(col) {
		return 0, d.indexError(i)
	}
	return col[i], nil
}

func (d *Dataset) indexError(i int) error {
	return errors.Wrapf(errs.ErrIndex, "point %d not in [0, %d)", i, d.Len())
}

func clone(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	return out
}
