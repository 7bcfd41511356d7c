// Package linfit fits a straight line to measurements with uncertainties by
// minimizing a weighted chi-square.
package linfit

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sartorproj/chifit/dataset"
	"github.com/sartorproj/chifit/errs"
	"github.com/sartorproj/chifit/optimize"
	"github.com/sartorproj/chifit/stats"
)

// Model represents a chi-square line fit.
type Model struct {
	Params      Params
	ChiSquare   float64
	DOF         int     // N - 1
	PValue      float64 // Chi-square survival probability at ChiSquare, DOF
	Correlation *float64 // Pearson coefficient of the raw x and y columns; nil when either is constant
	CrossAxis   int     // Points whose y error bar reaches the fitted line

	config    *Config
	log       logrus.FieldLogger
	fitted    bool
	data      *dataset.Dataset
	result    *optimize.Result
	residuals []float64
}

// New creates a line model. A nil config selects DefaultConfig.
func New(cfg *Config) *Model {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Model{config: cfg, log: cfg.logger()}
}

// Fit minimizes the chi-square of the line over ds and computes the
// goodness-of-fit statistics.
//
// Minimizer non-convergence is not an error: the best parameters found are
// kept and Summary().Converged reports false.
func (m *Model) Fit(ds *dataset.Dataset) error {
	if err := m.config.Validate(); err != nil {
		return err
	}

	log := m.log.WithField("dataset", ds.Name)
	minimizer := optimize.NewMinimizer(m.config.optimizer(log))
	objective := Objective(ds)

	res, err := minimizer.Run(objective, m.config.Start.Vector())
	if err != nil {
		return errors.Wrap(err, "minimize chi-square")
	}
	for attempt := 1; attempt <= m.config.Restarts && !res.Converged; attempt++ {
		log.WithFields(logrus.Fields{"attempt": attempt, "start": res.X}).Info("re-seeding minimizer")

		next, err := minimizer.Run(objective, res.X)
		if err != nil {
			return errors.Wrap(err, "minimize chi-square")
		}
		next.Iterations += res.Iterations
		next.Evaluations += res.Evaluations
		res = next
	}

	params, err := ParamsFromVector(res.X)
	if err != nil {
		return err
	}

	dof := ds.Len() - 1
	pValue, err := stats.SurvivalProbability(res.F, dof)
	if err != nil {
		return errors.Wrap(err, "chi-square probability")
	}

	var corr *float64
	r, err := stats.Pearson(ds.Xs(), ds.Ys())
	switch {
	case err == nil:
		corr = &r
	case errors.Is(err, errs.ErrDegenerateInput):
		log.WithError(err).Warn("correlation undefined")
	default:
		return errors.Wrap(err, "correlation")
	}

	residuals := Residuals(params, ds)
	cross, err := CrossAxisCount(residuals, ds)
	if err != nil {
		return err
	}

	m.Params = params
	m.ChiSquare = res.F
	m.DOF = dof
	m.PValue = pValue
	m.Correlation = corr
	m.CrossAxis = cross
	m.data = ds
	m.result = res
	m.residuals = residuals
	m.fitted = true

	log.WithFields(logrus.Fields{
		"slope":      params.Slope,
		"intercept":  params.Intercept,
		"chi2":       res.F,
		"dof":        dof,
		"iterations": res.Iterations,
		"converged":  res.Converged,
	}).Debug("line fitted")

	return nil
}

// Fitted reports whether Fit has succeeded.
func (m *Model) Fitted() bool {
	return m.fitted
}

// Predict evaluates the fitted line at x.
func (m *Model) Predict(x float64) (float64, error) {
	if !m.fitted {
		return 0, errs.ErrNotFitted
	}
	return m.Params.At(x), nil
}

// Residuals returns the residuals of the fitted line.
func (m *Model) Residuals() []float64 {
	if !m.fitted {
		return nil
	}
	result := make([]float64, len(m.residuals))
	copy(result, m.residuals)
	return result
}

// Result returns the minimizer outcome of the last fit.
func (m *Model) Result() *optimize.Result {
	if !m.fitted {
		return nil
	}
	r := *m.result
	r.X = append([]float64(nil), m.result.X...)
	return &r
}

// Data returns the dataset of the last fit.
func (m *Model) Data() *dataset.Dataset {
	return m.data
}
