// Package report formats fit summaries for the console and for machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/chifit/errs"
	"github.com/sartorproj/chifit/linfit"
)

// Format selects a machine-readable encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatText, nil
	default:
		return "", errors.Wrapf(errs.ErrInvalidConfig, "unknown report format %q", s)
	}
}

// WriteText writes the human-readable fit report.
func WriteText(w io.Writer, s *linfit.Summary) error {
	if s == nil {
		return errs.ErrNotFitted
	}

	tw := &textWriter{w: w}
	if s.Dataset != "" {
		tw.printf("Dataset: %s (%d points)\n", s.Dataset, s.NObs)
	}
	tw.printf("Chi^2: %.2f. Degrees of freedom: %d\n", s.ChiSquare, s.DOF)
	tw.printf("Reduced Chi^2: %.3f\n", s.ReducedChiSquare)
	tw.printf("Giving a confidence value (critical value) of: %.4f\n", s.PValue)
	tw.printf("Best fit line equation: %s\n", s.Equation)
	tw.printf("%d / %d (%.2f%%) data points cross the axis.\n", s.CrossAxis, s.NObs, s.CrossAxisPercent)
	if s.Correlation != nil {
		tw.printf("Correlation Coefficient between x and y data: %.2f\n", *s.Correlation)
	} else {
		tw.printf("Correlation Coefficient between x and y data: undefined (constant x or y)\n")
	}
	if s.DurbinWatson != nil {
		tw.printf("Durbin-Watson statistic of residuals: %.3f\n", *s.DurbinWatson)
	}
	if !s.Converged {
		tw.printf("Warning: minimizer stopped after %d iterations without converging.\n", s.Iterations)
	}
	return tw.err
}

// Encode writes the summary in the given format.
func Encode(w io.Writer, s *linfit.Summary, format Format) error {
	if s == nil {
		return errs.ErrNotFitted
	}

	switch format {
	case FormatText, "":
		return WriteText(w, s)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.Wrapf(errs.ErrInvalidConfig, "unknown report format %q", format)
	}
}

// textWriter remembers the first write error so WriteText can report it once.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}
