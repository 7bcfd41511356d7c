// Package linfit fits a straight line y = m*x + c to measurements with
// uncertainties by minimizing a weighted chi-square.
//
// Each point contributes ((y_i - (m*x_i + c)) / w_i)^2, where w_i is the
// point's y error. When a y error is zero the observed y_i is used as the
// weight instead; a point with a zero y and a zero y error cannot be weighted
// and fails with errs.ErrDivisionByZero. x errors are carried by the dataset
// for display only and do not enter the fit.
//
// # Fitting a Line
//
//	ds, _ := dataset.FromRecords([][4]float64{
//	    {1, 2, 0, 0.1}, {2, 4.1, 0, 0.1}, {3, 5.9, 0, 0.1}, {4, 8.2, 0, 0.1},
//	})
//	model := linfit.New(nil)
//	if err := model.Fit(ds); err != nil {
//	    return err
//	}
//	s := model.Summary()
//	fmt.Println(s.Equation, s.ChiSquare, s.PValue)
//
// The minimizer starts from slope 1, intercept 0. If it stops at its
// iteration cap, Summary().Converged is false and the best point found is
// kept; set Config.Restarts to re-seed from that point automatically.
//
// # Goodness of Fit
//
// Degrees of freedom are N - 1. The p-value is the chi-square survival
// probability at the minimized chi-square. The summary also reports the
// Pearson correlation of the raw data (nil when x or y is constant), the
// number of points whose error bar reaches the line (CrossAxis), and the
// Durbin-Watson statistic of the residuals.
//
// # Building Blocks
//
// The pieces are usable on their own:
//
//	chi, err := linfit.ChiSquare(linfit.Params{Slope: 2}, ds)
//	res := linfit.Residuals(params, ds)
//	n, err := linfit.CrossAxisCount(res, ds)
//	fn := linfit.Objective(ds) // for optimize.Minimizer
package linfit
