// Package stats provides the special functions and summary statistics used to
// judge a line fit.
//
// # Chi-Square Tail
//
// The survival function of the chi-square distribution is evaluated through
// the regularized upper incomplete gamma function:
//
//	q, _ := stats.RegularizedGammaQ(0.5, 1.5)
//	p, _ := stats.SurvivalProbability(chi, dof) // Q(dof/2, chi/2)
//
// # Correlation
//
//	r, err := stats.Pearson(xs, ys)
//	if errors.Is(err, errs.ErrDegenerateInput) {
//	    // one of the series is constant
//	}
//
// # Residual Diagnostics
//
//	dw, _ := stats.DurbinWatson(residuals)
//	r1, _ := stats.Autocorrelation(residuals, 1)
package stats
