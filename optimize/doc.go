// Package optimize implements a derivative-free Nelder-Mead simplex minimizer.
//
// The minimizer works on any scalar objective over a fixed-length parameter
// vector and needs only a starting point:
//
//	quad := func(x []float64) (float64, error) {
//	    return (x[0]-3)*(x[0]-3) + (x[1]+1)*(x[1]+1), nil
//	}
//	res, err := optimize.NewMinimizer(nil).Run(quad, []float64{0, 0})
//	// res.X ~ [3, -1], res.Converged == true
//
// The initial simplex perturbs each non-zero start coordinate by 5% and sets
// zero coordinates to 0.00025. Each iteration applies the standard reflect,
// expand, contract and shrink rules. The run stops when the spread of vertex
// values and the size of the simplex both fall within tolerance, or when the
// iteration cap is reached. In the latter case Result.Converged is false; the
// best vertex is still returned and the caller decides whether to re-seed.
//
// Errors returned by the objective abort the run and are passed back wrapped,
// so errors.Is still matches them.
package optimize
