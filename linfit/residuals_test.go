package linfit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/chifit/errs"
)

func TestResiduals(t *testing.T) {
	ds := mustDataset(t, [][4]float64{
		{1, 2, 0, 0.1},
		{2, 4.1, 0, 0.1},
		{3, 5.9, 0, 0.1},
	})

	res := Residuals(Params{Slope: 2}, ds)
	assert.InDeltaSlice(t, []float64{0, 0.1, -0.1}, res, 1e-12)
}

func TestResidualsMatchFittedModel(t *testing.T) {
	ds := mustDataset(t, [][4]float64{
		{1, 2, 0, 0.1},
		{2, 4.1, 0, 0.1},
		{3, 5.9, 0, 0.1},
		{4, 8.2, 0, 0.1},
	})

	model := New(nil)
	require.NoError(t, model.Fit(ds))

	want := []float64{0.01, 0.07, -0.17, 0.09}
	if diff := cmp.Diff(want, model.Residuals(), cmpopts.EquateApprox(0, 1e-2)); diff != "" {
		t.Errorf("residuals mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Residuals(model.Params, ds), model.Residuals()); diff != "" {
		t.Errorf("model residuals differ from recomputed (-want +got):\n%s", diff)
	}
}

func TestCrossAxisCount(t *testing.T) {
	t.Run("WithinErrorBars", func(t *testing.T) {
		ds := mustDataset(t, [][4]float64{
			{1, 2, 0, 0.5},
			{2, 4, 0, 0.5},
			{3, 6, 0, 0.5},
			{4, 8, 0, 0.5},
		})
		count, err := CrossAxisCount([]float64{0.2, -0.5, 0.7, -1}, ds)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("ZeroErrorsNonzeroResiduals", func(t *testing.T) {
		ds := mustDataset(t, [][4]float64{
			{1, 2, 0, 0},
			{2, 4, 0, 0},
			{3, 6, 0, 0},
		})
		count, err := CrossAxisCount([]float64{0.01, -0.02, 1e-9}, ds)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("NeverExceedsPointCount", func(t *testing.T) {
		ds := lineDataset(t, 1, 0, 10, 7)
		count, err := CrossAxisCount(Residuals(Params{Slope: 1.1}, ds), ds)
		require.NoError(t, err)
		assert.Equal(t, ds.Len(), count)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		ds := lineDataset(t, 1, 0, 1, 3)
		_, err := CrossAxisCount([]float64{0, 0}, ds)
		require.ErrorIs(t, err, errs.ErrShape)
	})
}
