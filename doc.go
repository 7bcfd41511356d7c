// Package chifit fits straight lines to measurements with uncertainties by
// minimizing a weighted chi-square statistic.
//
// The module is split into small packages:
//
//   - dataset: immutable measurement container with text and CSV loaders
//   - optimize: derivative-free Nelder-Mead minimizer
//   - stats: incomplete gamma, chi-square tail probability, Pearson
//     correlation and residual diagnostics
//   - linfit: chi-square objective, line model, residual analysis and summary
//   - plot: PNG point and residual charts
//   - report: text, JSON and YAML summaries
//   - config: layered configuration for the chifit command
//
// # Quick Start
//
//	ds, _ := dataset.Load("measurements.txt")
//	model := linfit.New(nil)
//	if err := model.Fit(ds); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(model.Params)          // y = 2.040x + -0.050
//	fmt.Println(model.ChiSquare, model.PValue)
//
// Each point is weighted by its y error. A point without a y error is
// weighted by its own y value instead, so a zero reading with no error
// cannot be fitted.
//
// The probability reported alongside a fit is the chance that a chi-square
// variable with N-1 degrees of freedom exceeds the minimized statistic:
//
//	p, _ := stats.SurvivalProbability(3.841458820694124, 1) // 0.05
package chifit
