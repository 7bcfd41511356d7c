// Package dataset provides the measurement container consumed by the fit.
//
// A Dataset holds parallel columns of x values, y values and their
// uncertainties. It is validated on construction and never modified
// afterwards, so it can be passed to every stage of the fit by pointer.
//
// # Creating a Dataset
//
// Build a dataset from columns:
//
//	ds, err := dataset.New(
//	    []float64{1, 2, 3, 4},         // x
//	    []float64{2, 4.1, 5.9, 8.2},   // y
//	    []float64{0, 0, 0, 0},         // x error
//	    []float64{0.1, 0.1, 0.1, 0.1}, // y error
//	)
//
// or from rows:
//
//	ds, err := dataset.FromRecords([][4]float64{
//	    {1, 2, 0, 0.1},
//	    {2, 4.1, 0, 0.1},
//	})
//
// Fewer than two points, or columns of different length, fail with
// errs.ErrShape. Accessors fail with errs.ErrIndex outside [0, Len()).
//
// # Loading from Files
//
// Whitespace tables with one "x y xerr yerr" row per line:
//
//	ds, err := dataset.LoadText("measurements.txt")
//
// CSV with named columns:
//
//	opts := dataset.DefaultCSVOptions()
//	opts.YErrColumn = "sigma"
//	ds, err := dataset.LoadCSV("measurements.csv", opts)
//
// Load picks between the two by file extension.
package dataset
