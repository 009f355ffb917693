package vif

import (
	"errors"
	"fmt"
)

var (
	// ErrRaggedColumns signals that the columns of a table do not have the same number of observations.
	ErrRaggedColumns = errors.New("columns have different numbers of observations")
	// ErrFactorization signals that the least squares factorization of a design matrix did not converge.
	ErrFactorization = errors.New("factorization of the design matrix failed")
)

// ColumnNotFoundError is returned when a selection names a column the table does not have.
type ColumnNotFoundError struct {
	Column    string
	Available []string
}

func (e ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in table (available: %v)", e.Column, e.Available)
}

// Is reports whether err is a *ColumnNotFoundError, regardless of the column it names.
func (e ColumnNotFoundError) Is(err error) bool {
	_, ok := err.(*ColumnNotFoundError)
	return ok
}

// DuplicateColumnError is returned when a column name is used twice where names must be unique.
type DuplicateColumnError struct {
	Column string
}

func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("column %q already exists", e.Column)
}

func (e DuplicateColumnError) Is(err error) bool {
	_, ok := err.(*DuplicateColumnError)
	return ok
}

// NonFiniteValueError is returned when a table holds NaN or an infinity.
type NonFiniteValueError struct {
	Column string
	Row    int
	Value  float64
}

func (e NonFiniteValueError) Error() string {
	return fmt.Sprintf("column %q row %d: non-finite value %v", e.Column, e.Row, e.Value)
}

func (e NonFiniteValueError) Is(err error) bool {
	_, ok := err.(*NonFiniteValueError)
	return ok
}

// RenderError wraps a failure of the render surface.
// The computed result is still returned next to it.
type RenderError struct {
	Err error
}

func (e RenderError) Error() string {
	if e.Err == nil {
		return "render failed"
	}
	return "render failed: " + e.Err.Error()
}

func (e RenderError) Is(err error) bool {
	_, ok := err.(*RenderError)
	return ok
}

func (e RenderError) Unwrap() error {
	return e.Err
}
