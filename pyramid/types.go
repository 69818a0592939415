// Package pyramid defines the triangular grid type, the forbidding
// predicate type and sentinel errors.
package pyramid

import (
	"errors"
	"math"
)

// minCellValue is the smallest cell value; math.MinInt64 has no int64 negation.
const minCellValue = math.MinInt64 + 1

// Sentinel errors for pyramid construction.
var (
	// ErrEmptyPyramid indicates the input has no rows.
	ErrEmptyPyramid = errors.New("pyramid: input must have at least one row")
	// ErrNotTriangular indicates row i (1-based) does not hold exactly i values.
	ErrNotTriangular = errors.New("pyramid: row i must have exactly i values")
	// ErrValueOutOfRange indicates a cell whose negation does not fit in an int64 arc weight.
	ErrValueOutOfRange = errors.New("pyramid: cell value out of range")
)

// ForbidFunc reports whether a cell value may never be entered by a path.
// It must be a pure, total function. A nil ForbidFunc means prime.IsPrime.
type ForbidFunc func(value int64) bool

// Pyramid is a validated triangular grid. It is immutable once built.
// Row i (1-based) holds i values; cells[i-1][j] is position j of row i.
type Pyramid struct {
	cells [][]int64
}
