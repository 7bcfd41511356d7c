// Package errs defines the sentinel errors returned by chifit packages.
//
// Errors are wrapped with context before they reach the caller, so compare
// with errors.Is rather than ==.
package errs

import "errors"

var (
	// ErrShape indicates malformed input data: mismatched column lengths or
	// too few points.
	ErrShape = errors.New("invalid data shape")
	// ErrIndex indicates an out-of-range record access.
	ErrIndex = errors.New("index out of range")
	// ErrDivisionByZero indicates a point with both a zero y-error and a zero
	// observed y, which leaves the chi-square term without a weight.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrDegenerateInput indicates a series with zero variance.
	ErrDegenerateInput = errors.New("degenerate input")
	// ErrDomain indicates arguments outside a distribution's domain.
	ErrDomain = errors.New("argument outside domain")
	// ErrNotFitted is returned when results are requested before a fit.
	ErrNotFitted = errors.New("model must be fitted first")
	// ErrInvalidConfig indicates an unusable configuration value.
	ErrInvalidConfig = errors.New("invalid configuration")
)
