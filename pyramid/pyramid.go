// Package pyramid provides utilities to treat a triangular grid of integer
// cell values as a layered DAG. It supports:
//
//   - Shape validation and a deep copy of the input
//   - A fixed (row, position) ↔ vertex id bijection
//   - Conversion to a *dag.Graph under a forbidding predicate
//
// Rows are 1-based, positions inside a row are 0-based.
package pyramid

import (
	"fmt"
	"math"
)

// New constructs a Pyramid from a non-empty triangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyPyramid if rows is empty,
// ErrNotTriangular (wrapped with the offending row) if row i has ≠ i values,
// ErrValueOutOfRange if a cell is math.MinInt64 (its arc weight would wrap).
// Complexity: O(N²) time and memory.
func New(rows [][]int64) (*Pyramid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyPyramid
	}
	for i, row := range rows {
		if len(row) != i+1 {
			return nil, fmt.Errorf("%w: row %d has %d values", ErrNotTriangular, i+1, len(row))
		}
		for j, value := range row {
			if value < minCellValue {
				return nil, fmt.Errorf("%w: row %d position %d holds %d", ErrValueOutOfRange, i+1, j, value)
			}
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int64, len(rows))
	for i := range rows {
		cells[i] = make([]int64, i+1)
		copy(cells[i], rows[i])
	}

	return &Pyramid{cells: cells}, nil
}

// Rows returns N, the number of rows.
func (p *Pyramid) Rows() int {
	return len(p.cells)
}

// InBounds reports whether (i, j) names a cell: 1 ≤ i ≤ N and 0 ≤ j < i.
// Complexity: O(1).
func (p *Pyramid) InBounds(i, j int) bool {
	return i >= 1 && i <= len(p.cells) && j >= 0 && j < i
}

// Value returns the value at row i, position j. (i, j) must be in bounds.
func (p *Pyramid) Value(i, j int) int64 {
	return p.cells[i-1][j]
}

// Row returns a copy of row i, or nil when i is out of range.
func (p *Pyramid) Row(i int) []int64 {
	if i < 1 || i > len(p.cells) {
		return nil
	}
	out := make([]int64, i)
	copy(out, p.cells[i-1])

	return out
}

// Cells returns N(N+1)/2, the number of grid cells.
func (p *Pyramid) Cells() int {
	n := len(p.cells)

	return n * (n + 1) / 2
}

// VertexCount returns V = N(N+1)/2 + 2: one vertex per cell plus source and sink.
func (p *Pyramid) VertexCount() int {
	return p.Cells() + 2
}

// VertexOf maps row i (1-based), position j (0-based) to its vertex id.
// Rows are laid out consecutively after the source: (1,0) is 1, (2,0) is 2,
// (2,1) is 3, (3,0) is 4, and so on.
// Complexity: O(1).
func VertexOf(i, j int) int {
	return i*(i-1)/2 + j + 1
}

// PositionOf is the inverse of VertexOf. It reports ok=false for the source,
// the sink, and any id outside the cell range of p.
// Complexity: O(1).
func (p *Pyramid) PositionOf(v int) (i, j int, ok bool) {
	if v < 1 || v > p.Cells() {
		return 0, 0, false
	}
	// Row i satisfies i(i-1)/2 < v ≤ i(i+1)/2.
	i = int((math.Sqrt(float64(8*v-7)) + 1) / 2)
	for i > 1 && VertexOf(i, 0) > v {
		i--
	}
	for VertexOf(i+1, 0) <= v {
		i++
	}

	return i, v - VertexOf(i, 0), true
}
