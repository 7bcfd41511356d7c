package linfit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/chifit/dataset"
	"github.com/sartorproj/chifit/errs"
)

func mustDataset(t *testing.T, records [][4]float64) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.FromRecords(records)
	require.NoError(t, err)
	return ds
}

func lineDataset(t *testing.T, slope, intercept, yErr float64, n int) *dataset.Dataset {
	t.Helper()
	records := make([][4]float64, n)
	for i := range records {
		x := float64(i) - 2
		records[i] = [4]float64{x, slope*x + intercept, 0.1, yErr}
	}
	return mustDataset(t, records)
}

func TestChiSquare(t *testing.T) {
	t.Run("ExactLineIsZero", func(t *testing.T) {
		ds := lineDataset(t, 3, -2, 0.5, 6)
		chi, err := ChiSquare(Params{Slope: 3, Intercept: -2}, ds)
		require.NoError(t, err)
		assert.Equal(t, 0.0, chi)
	})

	t.Run("WeightedByYErr", func(t *testing.T) {
		ds := mustDataset(t, [][4]float64{
			{0, 1, 0, 0.5},
			{1, 1, 0, 2},
		})
		// residuals 1 and 0 against y = x: (1/0.5)^2 + (0/2)^2
		chi, err := ChiSquare(Params{Slope: 1}, ds)
		require.NoError(t, err)
		assert.InDelta(t, 4, chi, 1e-12)
	})

	t.Run("ZeroErrorFallsBackToObservedY", func(t *testing.T) {
		ds := mustDataset(t, [][4]float64{
			{1, 4, 0, 0},
			{2, 5, 0, 0.5},
		})
		// point 0: ((4 - 2) / 4)^2, point 1: ((5 - 4) / 0.5)^2
		chi, err := ChiSquare(Params{Slope: 2}, ds)
		require.NoError(t, err)
		assert.InDelta(t, 0.25+4, chi, 1e-12)
	})

	t.Run("ZeroErrorAndZeroY", func(t *testing.T) {
		ds := mustDataset(t, [][4]float64{
			{1, 1, 0, 0.1},
			{2, 0, 0, 0},
		})
		_, err := ChiSquare(Params{Slope: 1}, ds)
		require.ErrorIs(t, err, errs.ErrDivisionByZero)
	})

	t.Run("NonNegative", func(t *testing.T) {
		ds := mustDataset(t, [][4]float64{
			{1, 2, 0, 0.1},
			{2, 4.1, 0, 0.1},
			{3, 5.9, 0, 0},
			{4, -8.2, 0, 0.3},
		})
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 200; i++ {
			p := Params{Slope: rng.NormFloat64() * 10, Intercept: rng.NormFloat64() * 10}
			chi, err := ChiSquare(p, ds)
			require.NoError(t, err)
			require.Greater(t, chi, 0.0)
		}
	})
}

func TestObjective(t *testing.T) {
	ds := lineDataset(t, 1, 1, 0.2, 4)
	fn := Objective(ds)

	v, err := fn([]float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = fn([]float64{1})
	require.ErrorIs(t, err, errs.ErrShape)
}

func TestParams(t *testing.T) {
	p := Params{Slope: 2.5, Intercept: -1}

	assert.Equal(t, 4.0, p.At(2))
	assert.Equal(t, []float64{2.5, -1}, p.Vector())
	assert.Equal(t, "y = 2.500x + -1.000", p.String())

	back, err := ParamsFromVector(p.Vector())
	require.NoError(t, err)
	assert.Equal(t, p, back)

	_, err = ParamsFromVector([]float64{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrShape)
}
