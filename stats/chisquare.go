package stats

import (
	"math"

	"github.com/pkg/errors"

	"github.com/sartorproj/chifit/errs"
)

// SurvivalProbability returns the probability of observing a chi-square
// statistic of at least chi with dof degrees of freedom under the null
// hypothesis: 1 - P(dof/2, chi/2).
//
// The upper tail is evaluated directly instead of as 1 - CDF, which keeps
// precision for small p-values.
func SurvivalProbability(chi float64, dof int) (float64, error) {
	if err := checkChiSquareArgs(chi, dof); err != nil {
		return 0, err
	}
	if chi == 0 {
		return 1, nil
	}
	return RegularizedGammaQ(float64(dof)/2, chi/2)
}

// ChiSquaredCDF returns the lower tail P(X <= x) of the chi-square
// distribution with k degrees of freedom.
func ChiSquaredCDF(x float64, k int) (float64, error) {
	if err := checkChiSquareArgs(x, k); err != nil {
		return 0, err
	}
	return RegularizedGammaP(float64(k)/2, x/2)
}

func checkChiSquareArgs(chi float64, dof int) error {
	if dof <= 0 {
		return errors.Wrapf(errs.ErrDomain, "degrees of freedom must be positive, got %d", dof)
	}
	if math.IsNaN(chi) || chi < 0 {
		return errors.Wrapf(errs.ErrDomain, "chi-square statistic must be non-negative, got %g", chi)
	}
	return nil
}
