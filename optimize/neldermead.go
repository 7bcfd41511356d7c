package optimize

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sartorproj/chifit/errs"
)

// Objective is a scalar function of a parameter vector. It must not mutate
// shared state or the slice it is given: the minimizer may call it for
// several vertices at once.
type Objective func(x []float64) (float64, error)

// Result is the outcome of a minimization run.
type Result struct {
	X           []float64 // Best parameters found
	F           float64   // Objective value at X
	Iterations  int
	Evaluations int
	Converged   bool // False when MaxIter was hit before the tolerances were met
}

// Minimizer is a derivative-free Nelder-Mead simplex minimizer.
type Minimizer struct {
	cfg Config
	log logrus.FieldLogger
}

type vertex struct {
	x []float64
	f float64
}

// NewMinimizer creates a minimizer. A nil config selects DefaultConfig.
func NewMinimizer(cfg *Config) *Minimizer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Minimizer{cfg: *cfg, log: cfg.logger()}
}

// Run minimizes fn starting from start.
//
// Hitting the iteration cap is not an error; it is reported through
// Result.Converged. An error from fn aborts the run and is returned.
func (m *Minimizer) Run(fn Objective, start []float64) (*Result, error) {
	if err := m.cfg.Validate(); err != nil {
		return nil, err
	}
	n := len(start)
	if n == 0 {
		return nil, errors.Wrap(errs.ErrShape, "start point has no coordinates")
	}

	sim := m.initialSimplex(start)
	evals := 0
	if err := m.evaluate(fn, sim); err != nil {
		return nil, err
	}
	evals += len(sim)
	order(sim)

	maxIter := m.cfg.maxIter(n)
	iter := 0
	converged := false
	for ; iter < maxIter; iter++ {
		if m.converged(sim) {
			converged = true
			break
		}

		worst := sim[n]
		c := centroid(sim[:n])

		xr := along(c, worst.x, -m.cfg.Reflection)
		fr, err := m.call(fn, xr)
		if err != nil {
			return nil, err
		}
		evals++

		switch {
		case fr < sim[0].f:
			xe := along(c, worst.x, -m.cfg.Reflection*m.cfg.Expansion)
			fe, err := m.call(fn, xe)
			if err != nil {
				return nil, err
			}
			evals++
			if fe < fr {
				sim[n] = vertex{xe, fe}
			} else {
				sim[n] = vertex{xr, fr}
			}

		case fr < sim[n-1].f:
			sim[n] = vertex{xr, fr}

		default:
			shrink := false
			if fr < worst.f {
				// Outside contraction.
				xc := along(c, worst.x, -m.cfg.Reflection*m.cfg.Contraction)
				fc, err := m.call(fn, xc)
				if err != nil {
					return nil, err
				}
				evals++
				if fc <= fr {
					sim[n] = vertex{xc, fc}
				} else {
					shrink = true
				}
			} else {
				// Inside contraction.
				xcc := along(c, worst.x, m.cfg.Contraction)
				fcc, err := m.call(fn, xcc)
				if err != nil {
					return nil, err
				}
				evals++
				if fcc < worst.f {
					sim[n] = vertex{xcc, fcc}
				} else {
					shrink = true
				}
			}

			if shrink {
				best := sim[0].x
				for j := 1; j <= n; j++ {
					sim[j].x = along(best, sim[j].x, m.cfg.Shrink)
				}
				if err := m.evaluate(fn, sim[1:]); err != nil {
					return nil, err
				}
				evals += n
			}
		}

		order(sim)
	}
	if !converged {
		converged = m.converged(sim)
	}

	res := &Result{
		X:           clone(sim[0].x),
		F:           sim[0].f,
		Iterations:  iter,
		Evaluations: evals,
		Converged:   converged,
	}

	entry := m.log.WithFields(logrus.Fields{
		"iterations":  res.Iterations,
		"evaluations": res.Evaluations,
		"f":           res.F,
	})
	if converged {
		entry.Debug("simplex converged")
	} else {
		entry.Warn("simplex hit iteration cap before converging")
	}

	return res, nil
}

// initialSimplex builds n+1 vertices: the start point plus one vertex per
// coordinate, scaled by NonzeroDelta or set to ZeroDelta when zero.
func (m *Minimizer) initialSimplex(start []float64) []vertex {
	n := len(start)
	sim := make([]vertex, n+1)
	sim[0].x = clone(start)
	for k := 0; k < n; k++ {
		x := clone(start)
		if x[k] != 0 {
			x[k] *= 1 + m.cfg.NonzeroDelta
		} else {
			x[k] = m.cfg.ZeroDelta
		}
		sim[k+1].x = x
	}
	return sim
}

// converged reports whether both the value spread and the coordinate spread
// of the simplex are within tolerance. Tolerances are relative to the best
// vertex with an absolute floor, so a best value of zero still terminates.
func (m *Minimizer) converged(sim []vertex) bool {
	best := sim[0]

	fSpread := 0.0
	xSpread := 0.0
	xScale := 1.0
	for _, v := range best.x {
		xScale = math.Max(xScale, math.Abs(v))
	}
	for _, v := range sim[1:] {
		fSpread = math.Max(fSpread, math.Abs(v.f-best.f))
		for k := range v.x {
			xSpread = math.Max(xSpread, math.Abs(v.x[k]-best.x[k]))
		}
	}

	if math.IsNaN(fSpread) || math.IsInf(fSpread, 0) {
		return false
	}
	return fSpread <= m.cfg.FTol*math.Max(1, math.Abs(best.f)) &&
		xSpread <= m.cfg.XTol*xScale
}

// evaluate fills in f for every vertex, concurrently when configured.
func (m *Minimizer) evaluate(fn Objective, vs []vertex) error {
	if !m.cfg.Parallel || len(vs) < 2 {
		for i := range vs {
			f, err := m.call(fn, vs[i].x)
			if err != nil {
				return err
			}
			vs[i].f = f
		}
		return nil
	}

	var g errgroup.Group
	for i := range vs {
		i := i // per-iteration copy (go.mod targets 1.21 loop semantics)
		g.Go(func() error {
			f, err := m.call(fn, vs[i].x)
			if err != nil {
				return err
			}
			vs[i].f = f
			return nil
		})
	}
	return g.Wait()
}

// call evaluates fn on a private copy of x. NaN maps to +Inf so the simplex
// moves away from it.
func (m *Minimizer) call(fn Objective, x []float64) (float64, error) {
	f, err := fn(clone(x))
	if err != nil {
		return 0, errors.WithMessagef(err, "objective at %v", x)
	}
	if math.IsNaN(f) {
		return math.Inf(1), nil
	}
	return f, nil
}

func order(sim []vertex) {
	sort.SliceStable(sim, func(i, j int) bool {
		return sim[i].f < sim[j].f
	})
}

func centroid(vs []vertex) []float64 {
	c := make([]float64, len(vs[0].x))
	for _, v := range vs {
		for k, x := range v.x {
			c[k] += x
		}
	}
	for k := range c {
		c[k] /= float64(len(vs))
	}
	return c
}

// along returns from + t*(to - from).
func along(from, to []float64, t float64) []float64 {
	out := make([]float64, len(from))
	for k := range from {
		out[k] = from[k] + t*(to[k]-from[k])
	}
	return out
}

func clone(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	return out
}
