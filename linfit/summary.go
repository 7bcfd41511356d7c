package linfit

import (
	"github.com/pkg/errors"

	"github.com/sartorproj/chifit/errs"
	"github.com/sartorproj/chifit/stats"
)

// Summary holds everything reported about a fit.
type Summary struct {
	Dataset          string    `json:"dataset,omitempty" yaml:"dataset,omitempty"`
	NObs             int       `json:"n_obs" yaml:"n_obs"`
	Params           Params    `json:"params" yaml:"params"`
	Equation         string    `json:"equation" yaml:"equation"`
	ChiSquare        float64   `json:"chi_square" yaml:"chi_square"`
	DOF              int       `json:"dof" yaml:"dof"`
	ReducedChiSquare float64   `json:"reduced_chi_square" yaml:"reduced_chi_square"`
	PValue           float64   `json:"p_value" yaml:"p_value"`
	Correlation      *float64  `json:"correlation,omitempty" yaml:"correlation,omitempty"` // nil when x or y is constant
	CrossAxis        int       `json:"cross_axis" yaml:"cross_axis"`
	CrossAxisPercent float64   `json:"cross_axis_percent" yaml:"cross_axis_percent"`
	Residuals        []float64 `json:"residuals" yaml:"residuals"`
	DurbinWatson     *float64  `json:"durbin_watson,omitempty" yaml:"durbin_watson,omitempty"` // nil when every residual is zero
	ResidualLag1     *float64  `json:"residual_lag1,omitempty" yaml:"residual_lag1,omitempty"` // nil for constant residuals
	Iterations       int       `json:"iterations" yaml:"iterations"`
	Evaluations      int       `json:"evaluations" yaml:"evaluations"`
	Converged        bool      `json:"converged" yaml:"converged"`
}

// Summary returns a summary of the fitted model, or nil before Fit.
func (m *Model) Summary() *Summary {
	if !m.fitted {
		return nil
	}

	n := m.data.Len()
	s := &Summary{
		Dataset:          m.data.Name,
		NObs:             n,
		Params:           m.Params,
		Equation:         m.Params.String(),
		ChiSquare:        m.ChiSquare,
		DOF:              m.DOF,
		ReducedChiSquare: m.ChiSquare / float64(m.DOF),
		PValue:           m.PValue,
		Correlation:      m.Correlation,
		CrossAxis:        m.CrossAxis,
		CrossAxisPercent: 100 * float64(m.CrossAxis) / float64(n),
		Residuals:        m.Residuals(),
		Iterations:       m.result.Iterations,
		Evaluations:      m.result.Evaluations,
		Converged:        m.result.Converged,
	}

	dw, err := stats.DurbinWatson(m.residuals)
	switch {
	case err == nil:
		s.DurbinWatson = &dw
	case !errors.Is(err, errs.ErrDegenerateInput):
		m.log.WithError(err).Warn("durbin-watson unavailable")
	}

	if r1, err := stats.Autocorrelation(m.residuals, 1); err == nil {
		s.ResidualLag1 = &r1
	}

	return s
}
