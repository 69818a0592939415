// Package pyramid treats a triangular grid of integers as a layered DAG
// in which forbidden values can never be entered.
//
// What:
//
//   - Pyramid wraps a validated [][]int64 where row i holds i values.
//   - VertexOf / PositionOf give the fixed row-major id bijection.
//   - Build emits the DAG: source → apex, parents → child, bottom → sink.
//     Arc weights are negated cell values (sink arcs weigh 0), ready for
//     shortest-path relaxation that actually maximizes the sum.
//
// Forbidding:
//
//	A forbidden cell (prime by default) gets no incoming arc. It is never
//	deleted, so ids stay contiguous; outgoing arcs it may carry are inert
//	because no path can ever reach it.
//
// Complexity:
//
//   - New:            O(N²) time and memory (deep copy).
//   - Build:          O(N²) time, O(V+E) memory.
//   - VertexOf:       O(1).
//   - PositionOf:     O(1).
//
// Errors:
//
//   - ErrEmptyPyramid:  input has no rows.
//   - ErrNotTriangular: row i does not hold exactly i values.
package pyramid
