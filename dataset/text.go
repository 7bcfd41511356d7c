package dataset

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sartorproj/chifit/errs"
)

// LoadText loads a whitespace-separated measurement table from a file.
//
// Each non-blank line holds "x y xerr yerr". Lines with two columns get zero
// errors and lines with three columns are read as "x y yerr". Columns after
// the fourth must still be numeric but are ignored. Every line must have the
// same number of columns. Text after '#' is ignored.
func LoadText(filename string) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ds, err := LoadTextFromReader(file)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filename)
	}
	return ds, nil
}

// LoadTextFromReader loads a whitespace-separated measurement table.
func LoadTextFromReader(r io.Reader) (*Dataset, error) {
	var xs, ys, xErrs, yErrs []float64

	scanner := bufio.NewScanner(r)
	lineNo := 0
	width := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(fields) == 0 {
			continue
		}

		if width == 0 {
			width = len(fields)
		}
		if len(fields) != width {
			return nil, errors.Wrapf(errs.ErrShape, "line %d: expected %d columns, got %d", lineNo, width, len(fields))
		}

		row, err := parseRow(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		xs = append(xs, row[0])
		ys = append(ys, row[1])
		xErrs = append(xErrs, row[2])
		yErrs = append(yErrs, row[3])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return New(xs, ys, xErrs, yErrs)
}

// parseRow maps 2, 3 or more fields onto {x, y, xerr, yerr}. Fields past
// the fourth are parsed but dropped.
func parseRow(fields []string) ([4]float64, error) {
	var row [4]float64

	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return row, errors.Wrapf(errs.ErrShape, "column %d: %q is not a number", i+1, f)
		}
		values[i] = v
	}

	switch len(values) {
	case 2:
		row[0], row[1] = values[0], values[1]
	case 3:
		row[0], row[1], row[3] = values[0], values[1], values[2]
	case 0, 1:
		return row, errors.Wrapf(errs.ErrShape, "expected at least 2 columns, got %d", len(values))
	default:
		copy(row[:], values[:4])
	}
	return row, nil
}

// Load picks a loader from the file extension: CSV for ".csv", the
// whitespace table format otherwise.
func Load(filename string) (*Dataset, error) {
	if strings.EqualFold(extension(filename), ".csv") {
		return LoadCSV(filename, nil)
	}
	return LoadText(filename)
}

func extension(filename string) string {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 || strings.ContainsAny(filename[idx:], `/\`) {
		return ""
	}
	return filename[idx:]
}
