package dataset

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/chifit/errs"
)

func TestLoadCSVFromReader(t *testing.T) {
	t.Run("NamedColumns", func(t *testing.T) {
		data := `yerr,y,x,xerr
0.1,2,1,0
0.1,4.1,2,0
0.2,5.9,3,0.05`

		ds, err := LoadCSVFromReader(strings.NewReader(data), nil)
		require.NoError(t, err)
		require.Equal(t, 3, ds.Len())
		require.Equal(t, []float64{1, 2, 3}, ds.Xs())
		require.Equal(t, []float64{2, 4.1, 5.9}, ds.Ys())
		require.Equal(t, []float64{0, 0, 0.05}, ds.XErrs())
		require.Equal(t, []float64{0.1, 0.1, 0.2}, ds.YErrs())
	})

	t.Run("CustomNamesAndMissingErrors", func(t *testing.T) {
		data := `time;distance
0;0.5
1;1.5
2;2.4`
		opts := DefaultCSVOptions()
		opts.XColumn = "time"
		opts.YColumn = "distance"
		opts.Delimiter = ';'

		ds, err := LoadCSVFromReader(strings.NewReader(data), opts)
		require.NoError(t, err)
		require.Equal(t, []float64{0, 0, 0}, ds.YErrs())
	})

	t.Run("SkipsMissingValues", func(t *testing.T) {
		data := `x,y,xerr,yerr
1,2,0,0.1
2,NA,0,0.1
3,6,0,0.1
,8,0,0.1`

		ds, err := LoadCSVFromReader(strings.NewReader(data), nil)
		require.NoError(t, err)
		require.Equal(t, []float64{1, 3}, ds.Xs())
	})

	t.Run("Positional", func(t *testing.T) {
		data := "# exported\n1,2,0,0.1\n2,4,0,0.1\n"
		opts := DefaultCSVOptions()
		opts.HasHeader = false
		opts.SkipRows = 1

		ds, err := LoadCSVFromReader(strings.NewReader(data), opts)
		require.NoError(t, err)
		require.Equal(t, 2, ds.Len())
		require.Equal(t, []float64{0.1, 0.1}, ds.YErrs())
	})

	t.Run("EmptyErrorCellsReadAsZero", func(t *testing.T) {
		data := "x,y,xerr,yerr\n1,2,,0.1\n2,4,0,NA\n"

		ds, err := LoadCSVFromReader(strings.NewReader(data), nil)
		require.NoError(t, err)
		require.Equal(t, []float64{0, 0}, ds.XErrs())
		require.Equal(t, []float64{0.1, 0}, ds.YErrs())
	})

	t.Run("UnreadableErrorCell", func(t *testing.T) {
		for _, data := range []string{
			"x,y,xerr,yerr\n1,2,0,abc\n2,4,0,0.1\n",
			"x,y,xerr,yerr\n1,2,0,0.1\n2,4,1e,0.1\n",
		} {
			_, err := LoadCSVFromReader(strings.NewReader(data), nil)
			require.ErrorIs(t, err, errs.ErrShape, data)
		}

		_, err := LoadCSVFromReader(strings.NewReader("x,y,xerr,yerr\n1,2,0,0.1\n2,4,0,abc\n"), nil)
		require.ErrorContains(t, err, "row 3")
	})

	t.Run("MissingHeaderColumn", func(t *testing.T) {
		_, err := LoadCSVFromReader(strings.NewReader("a,b\n1,2\n"), nil)
		require.ErrorIs(t, err, errs.ErrShape)
	})
}

func TestSaveCSVRoundTrip(t *testing.T) {
	ds := sample(t)
	filename := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, SaveCSV(ds, filename))

	loaded, err := LoadCSV(filename, nil)
	require.NoError(t, err)
	require.Equal(t, ds.Xs(), loaded.Xs())
	require.Equal(t, ds.Ys(), loaded.Ys())
	require.Equal(t, ds.XErrs(), loaded.XErrs())
	require.Equal(t, ds.YErrs(), loaded.YErrs())
}

func TestWriteCSV(t *testing.T) {
	ds, err := FromRecords([][4]float64{{1, 2, 0, 0.5}, {2, 4, 0, 0.25}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ds))
	require.Equal(t, "x,y,xerr,yerr\n1,2,0,0.5\n2,4,0,0.25\n", buf.String())
}
