package plot

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/chifit/dataset"
	"github.com/sartorproj/chifit/errs"
	"github.com/sartorproj/chifit/linfit"
)

const (
	// trendSamples is the number of points drawn along the trendline.
	trendSamples = 10
	// trendMargin widens the trendline span past the data extremes.
	trendMargin = 1.1
	// capFraction sizes error bar caps relative to the x span.
	capFraction = 0.01
)

var (
	pointColor = drawing.Color{R: 31, G: 119, B: 180, A: 255}
	trendColor = drawing.Color{R: 255, G: 165, B: 0, A: 255}
	zeroColor  = drawing.Color{R: 0, G: 0, B: 0, A: 255}
)

// Options holds chart labels and size.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  int // default: 1024
	Height int // default: 768
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = 1024
	}
	if h <= 0 {
		h = 768
	}
	return w, h
}

// Points renders the measurements with their x and y error bars. When params
// is non-nil the fitted line is drawn over [1.1*min, 1.1*max] of the data.
func Points(w io.Writer, ds *dataset.Dataset, params *linfit.Params, opts Options) error {
	xs, ys := ds.Xs(), ds.Ys()
	series := errorBars(xs, ys, ds.XErrs(), ds.YErrs())
	series = append(series, pointSeries("data", xs, ys))

	if params != nil {
		tx := make([]float64, trendSamples)
		floats.Span(tx, ds.Min()*trendMargin, ds.Max()*trendMargin)
		ty := make([]float64, len(tx))
		for i, x := range tx {
			ty[i] = params.At(x)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    "fit",
			XValues: tx,
			YValues: ty,
			Style: chart.Style{
				StrokeColor:     trendColor,
				StrokeWidth:     2,
				StrokeDashArray: []float64{8, 4, 2, 4},
			},
		})
	}

	return render(w, series, opts)
}

// Residuals renders residuals against x with y error bars and a dashed zero
// line.
func Residuals(w io.Writer, ds *dataset.Dataset, residuals []float64, opts Options) error {
	if len(residuals) != ds.Len() {
		return errors.Wrapf(errs.ErrShape, "%d residuals for %d points", len(residuals), ds.Len())
	}

	xs := ds.Xs()
	series := errorBars(xs, residuals, nil, ds.YErrs())
	series = append(series, pointSeries("residuals", xs, residuals))

	lo, hi := floats.Min(xs), floats.Max(xs)
	pad := (hi - lo) * 0.05
	series = append(series, chart.ContinuousSeries{
		Name:    "zero",
		XValues: []float64{lo - pad, hi + pad},
		YValues: []float64{0, 0},
		Style: chart.Style{
			StrokeColor:     zeroColor,
			StrokeWidth:     1,
			StrokeDashArray: []float64{6, 4},
		},
	})

	return render(w, series, opts)
}

// FileName derives an image file name from a chart title by joining its
// words with underscores.
func FileName(title string) string {
	name := strings.Join(strings.Fields(title), "_")
	if name == "" {
		name = "plot"
	}
	return name + ".png"
}

// WriteFile creates filename and renders into it with draw.
func WriteFile(filename string, draw func(io.Writer) error) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := draw(file); err != nil {
		file.Close()
		return errors.Wrapf(err, "render %s", filename)
	}
	return file.Close()
}

func render(w io.Writer, series []chart.Series, opts Options) error {
	width, height := opts.size()
	ch := chart.Chart{
		Title:  opts.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis:  chart.XAxis{Name: opts.XLabel},
		YAxis:  chart.YAxis{Name: opts.YLabel},
		Series: series,
	}
	return ch.Render(chart.PNG, w)
}

func pointSeries(name string, xs, ys []float64) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth: 0,
			StrokeColor: drawing.ColorTransparent,
			DotWidth:    4,
			DotColor:    pointColor,
		},
	}
}

// errorBars draws one segment per non-zero error, with caps. xErrs may be
// nil.
func errorBars(xs, ys, xErrs, yErrs []float64) []chart.Series {
	capHalf := (floats.Max(xs) - floats.Min(xs)) * capFraction
	if capHalf == 0 {
		capHalf = capFraction
	}
	style := chart.Style{StrokeColor: pointColor, StrokeWidth: 1}

	var out []chart.Series
	segment := func(x0, y0, x1, y1 float64) {
		out = append(out, chart.ContinuousSeries{
			XValues: []float64{x0, x1},
			YValues: []float64{y0, y1},
			Style:   style,
		})
	}

	for i := range xs {
		x, y := xs[i], ys[i]
		if e := yErrs[i]; e != 0 {
			segment(x, y-e, x, y+e)
			segment(x-capHalf, y-e, x+capHalf, y-e)
			segment(x-capHalf, y+e, x+capHalf, y+e)
		}
		if xErrs != nil && xErrs[i] != 0 {
			e := xErrs[i]
			capY := capHalf * spanRatio(ys, xs)
			segment(x-e, y, x+e, y)
			segment(x-e, y-capY, x-e, y+capY)
			segment(x+e, y-capY, x+e, y+capY)
		}
	}
	return out
}

// spanRatio converts an x-scaled length into the y scale.
func spanRatio(ys, xs []float64) float64 {
	dx := floats.Max(xs) - floats.Min(xs)
	dy := floats.Max(ys) - floats.Min(ys)
	if dx == 0 || dy == 0 {
		return 1
	}
	return dy / dx
}
