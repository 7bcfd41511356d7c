// Package plot renders fit results as PNG charts.
//
// Points draws the measurements with x and y error bars and, optionally, the
// fitted line as a dash-dot trendline. Residuals draws the residuals with their
// y error bars against a dashed zero line; points whose bar crosses that line
// are the ones linfit.CrossAxisCount counts.
//
//	err := plot.WriteFile(plot.FileName(title), func(w io.Writer) error {
//	    return plot.Points(w, ds, &summary.Params, plot.Options{
//	        Title: title, XLabel: "mass (kg)", YLabel: "extension (m)",
//	    })
//	})
package plot
