package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/chifit/errs"
)

func TestRegularizedGamma(t *testing.T) {
	tests := []struct {
		name string
		a, x float64
		want float64 // P(a, x)
	}{
		{"exponential small x", 1, 0.5, 1 - math.Exp(-0.5)},
		{"exponential large x", 1, 7, 1 - math.Exp(-7)},
		{"half shape is erf", 0.5, 0.3, math.Erf(math.Sqrt(0.3))},
		{"half shape large x", 0.5, 9, math.Erf(3)},
		{"integer shape", 3, 2, 1 - math.Exp(-2)*(1+2+2)},
		{"integer shape cf branch", 3, 10, 1 - math.Exp(-10)*(1+10+50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := RegularizedGammaP(tt.a, tt.x)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, p, 1e-12)

			q, err := RegularizedGammaQ(tt.a, tt.x)
			require.NoError(t, err)
			assert.InDelta(t, 1-tt.want, q, 1e-12)
		})
	}
}

func TestRegularizedGammaEdges(t *testing.T) {
	p, err := RegularizedGammaP(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)

	q, err := RegularizedGammaQ(2, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, q)

	for _, args := range [][2]float64{{0, 1}, {-1, 1}, {math.NaN(), 1}, {1, -0.5}, {1, math.NaN()}} {
		_, err := RegularizedGammaP(args[0], args[1])
		require.ErrorIs(t, err, errs.ErrDomain, "P(%v, %v)", args[0], args[1])
		_, err = RegularizedGammaQ(args[0], args[1])
		require.ErrorIs(t, err, errs.ErrDomain, "Q(%v, %v)", args[0], args[1])
	}
}

func TestSurvivalProbability(t *testing.T) {
	t.Run("KnownCriticalValues", func(t *testing.T) {
		tests := []struct {
			chi  float64
			dof  int
			want float64
		}{
			{3.841458820694124, 1, 0.05},
			{5.991464547107979, 2, 0.05},
			{7.814727903251178, 3, 0.05},
			{2, 2, math.Exp(-1)},
			{6.634896601021214, 1, 0.01},
		}
		for _, tt := range tests {
			got, err := SurvivalProbability(tt.chi, tt.dof)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9, "chi=%v dof=%d", tt.chi, tt.dof)
		}
	})

	t.Run("MatchesGonum", func(t *testing.T) {
		for _, dof := range []int{1, 2, 3, 5, 10, 30, 100} {
			dist := distuv.ChiSquared{K: float64(dof)}
			for _, chi := range []float64{0.01, 0.5, 1, 3, 8, 20, 50, 150} {
				got, err := SurvivalProbability(chi, dof)
				require.NoError(t, err)
				assert.InDelta(t, dist.Survival(chi), got, 1e-9, "chi=%v dof=%d", chi, dof)
			}
		}
	})

	t.Run("ZeroIsOne", func(t *testing.T) {
		for _, dof := range []int{1, 2, 3, 17, 250} {
			got, err := SurvivalProbability(0, dof)
			require.NoError(t, err)
			assert.Equal(t, 1.0, got)
		}
	})

	t.Run("MonotonicInChi", func(t *testing.T) {
		for _, dof := range []int{1, 3, 9} {
			prev := 1.0
			for chi := 0.0; chi <= 60; chi += 0.25 {
				got, err := SurvivalProbability(chi, dof)
				require.NoError(t, err)
				require.LessOrEqual(t, got, prev, "chi=%v dof=%d", chi, dof)
				require.GreaterOrEqual(t, got, 0.0)
				prev = got
			}
		}
	})

	t.Run("DomainErrors", func(t *testing.T) {
		_, err := SurvivalProbability(1, 0)
		require.ErrorIs(t, err, errs.ErrDomain)
		_, err = SurvivalProbability(1, -3)
		require.ErrorIs(t, err, errs.ErrDomain)
		_, err = SurvivalProbability(-0.1, 3)
		require.ErrorIs(t, err, errs.ErrDomain)
		_, err = SurvivalProbability(math.NaN(), 3)
		require.ErrorIs(t, err, errs.ErrDomain)
	})
}

func TestChiSquaredCDF(t *testing.T) {
	for _, tt := range []struct {
		x float64
		k int
	}{{0.5, 1}, {3.84, 1}, {5.99, 2}, {7.81, 3}, {40, 25}} {
		cdf, err := ChiSquaredCDF(tt.x, tt.k)
		require.NoError(t, err)
		sf, err := SurvivalProbability(tt.x, tt.k)
		require.NoError(t, err)
		assert.InDelta(t, 1, cdf+sf, 1e-12)
	}

	_, err := ChiSquaredCDF(1, 0)
	require.ErrorIs(t, err, errs.ErrDomain)
}

func TestPearson(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6}

	t.Run("PositiveLine", func(t *testing.T) {
		ys := make([]float64, len(xs))
		for i, x := range xs {
			ys[i] = 2.5 * x
		}
		r, err := Pearson(xs, ys)
		require.NoError(t, err)
		assert.InDelta(t, 1, r, 1e-12)
	})

	t.Run("NegativeLine", func(t *testing.T) {
		ys := make([]float64, len(xs))
		for i, x := range xs {
			ys[i] = -0.3 * x
		}
		r, err := Pearson(xs, ys)
		require.NoError(t, err)
		assert.InDelta(t, -1, r, 1e-12)
	})

	t.Run("KnownValue", func(t *testing.T) {
		a := []float64{43, 21, 25, 42, 57, 59}
		b := []float64{99, 65, 79, 75, 87, 81}
		r, err := Pearson(a, b)
		require.NoError(t, err)
		assert.InDelta(t, 0.5298, r, 1e-4)
	})

	t.Run("ConstantSeries", func(t *testing.T) {
		_, err := Pearson(xs, []float64{3, 3, 3, 3, 3, 3})
		require.ErrorIs(t, err, errs.ErrDegenerateInput)

		_, err = Pearson([]float64{0.1, 0.1, 0.1}, []float64{1, 2, 3})
		require.ErrorIs(t, err, errs.ErrDegenerateInput)
	})

	t.Run("Shape", func(t *testing.T) {
		_, err := Pearson(xs, xs[:3])
		require.ErrorIs(t, err, errs.ErrShape)

		_, err = Pearson([]float64{1}, []float64{2})
		require.ErrorIs(t, err, errs.ErrShape)
	})
}

func TestDurbinWatson(t *testing.T) {
	tests := []struct {
		name      string
		residuals []float64
		expected  float64
	}{
		{
			name:      "alternating",
			residuals: []float64{1, -1, 1, -1, 1, -1, 1, -1},
			expected:  3.5,
		},
		{
			name:      "positive autocorrelation",
			residuals: []float64{1, 1, 1, 1, -1, -1, -1, -1},
			expected:  0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DurbinWatson(tt.residuals)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}

	_, err := DurbinWatson([]float64{0, 0, 0})
	require.ErrorIs(t, err, errs.ErrDegenerateInput)
	_, err = DurbinWatson([]float64{1})
	require.ErrorIs(t, err, errs.ErrShape)
}

func TestAutocorrelation(t *testing.T) {
	values := []float64{1, -1, 1, -1, 1, -1}

	r0, err := Autocorrelation(values, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1, r0, 1e-12)

	r1, err := Autocorrelation(values, 1)
	require.NoError(t, err)
	assert.InDelta(t, -5.0/6.0, r1, 1e-12)

	_, err = Autocorrelation(values, 6)
	require.ErrorIs(t, err, errs.ErrIndex)
	_, err = Autocorrelation([]float64{2, 2, 2}, 1)
	require.ErrorIs(t, err, errs.ErrDegenerateInput)
}
