package dataset

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sartorproj/chifit/errs"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	XColumn    string // Column name for x (default: "x")
	YColumn    string // Column name for y (default: "y")
	XErrColumn string // Column name for x error (default: "xerr", optional)
	YErrColumn string // Column name for y error (default: "yerr", optional)
	HasHeader  bool   // Whether CSV has header row (default: true)
	Delimiter  rune   // Field delimiter (default: ',')
	SkipRows   int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		XColumn:    "x",
		YColumn:    "y",
		XErrColumn: "xerr",
		YErrColumn: "yerr",
		HasHeader:  true,
		Delimiter:  ',',
	}
}

// LoadCSV loads a dataset from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ds, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filename)
	}
	return ds, nil
}

// LoadCSVFromReader loads a dataset from an io.Reader.
//
// Without a header the columns are taken positionally as x, y, xerr, yerr.
// Missing error columns and empty or NA error cells read as zero; any other
// non-numeric error cell fails with errs.ErrShape. Rows whose x or y is
// empty, NA or NaN are skipped.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Dataset, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	// x, y, xerr, yerr
	idx := [4]int{0, 1, 2, 3}
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		idx = [4]int{-1, -1, -1, -1}
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case strings.EqualFold(h, opts.XColumn):
				idx[0] = i
			case strings.EqualFold(h, opts.YColumn):
				idx[1] = i
			case opts.XErrColumn != "" && strings.EqualFold(h, opts.XErrColumn):
				idx[2] = i
			case opts.YErrColumn != "" && strings.EqualFold(h, opts.YErrColumn):
				idx[3] = i
			}
		}
		if idx[0] == -1 || idx[1] == -1 {
			return nil, errors.Wrapf(errs.ErrShape, "header must name %q and %q columns", opts.XColumn, opts.YColumn)
		}
	}

	var xs, ys, xErrs, yErrs []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		x, okX := field(record, idx[0])
		y, okY := field(record, idx[1])
		if !okX || !okY {
			continue
		}
		xErr, err := errorField(record, idx[2])
		if err != nil {
			return nil, rowError(reader, err)
		}
		yErr, err := errorField(record, idx[3])
		if err != nil {
			return nil, rowError(reader, err)
		}

		xs = append(xs, x)
		ys = append(ys, y)
		xErrs = append(xErrs, xErr)
		yErrs = append(yErrs, yErr)
	}

	return New(xs, ys, xErrs, yErrs)
}

// field parses record[i]; ok is false for absent or non-numeric cells.
func field(record []string, i int) (float64, bool) {
	if i < 0 || i >= len(record) {
		return 0, false
	}
	s := cell(record[i])
	if missing(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// errorField parses an uncertainty cell. Absent columns and missing markers
// read as zero.
func errorField(record []string, i int) (float64, error) {
	if i < 0 || i >= len(record) {
		return 0, nil
	}
	s := cell(record[i])
	if missing(s) {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(errs.ErrShape, "column %d: %q is not a number", i+1, s)
	}
	return v, nil
}

func cell(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

func missing(s string) bool {
	return s == "" || s == "NA" || s == "NaN" || s == "null"
}

// rowError prefixes err with the line of the record just read.
func rowError(reader *csv.Reader, err error) error {
	line, _ := reader.FieldPos(0)
	return errors.Wrapf(err, "row %d", line)
}

// SaveCSV writes a dataset to a CSV file with an x,y,xerr,yerr header.
func SaveCSV(ds *Dataset, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if err := WriteCSV(writer, ds); err != nil {
		return err
	}
	return writer.Flush()
}

// WriteCSV writes a dataset as CSV.
func WriteCSV(w io.Writer, ds *Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "xerr", "yerr"}); err != nil {
		return err
	}
	for i := 0; i < ds.Len(); i++ {
		row := []string{
			format(ds.x[i]),
			format(ds.y[i]),
			format(ds.xErr[i]),
			format(ds.yErr[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
