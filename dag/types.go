// SPDX-License-Identifier: MIT
// Package: primepath/dag
//
// types.go: Graph, Edge, vertex colours and sentinel errors.
//
// Design:
//   • Vertices are dense integers [0, V). No string IDs, no maps, no locks:
//     the graph is built once by a single builder and then only read.
//   • Adjacency is an arena: adj[u] holds every outgoing Edge of u in
//     insertion order, so traversal order is deterministic.
//   • Vertex 0 is the synthetic source, vertex V-1 the synthetic sink.

package dag

import "errors"

// Source is the reserved id of the synthetic source vertex.
const Source = 0

// minVertices is the smallest meaningful arena: source plus sink.
const minVertices = 2

// Vertex colours used by TopologicalSort.
const (
	White = iota // not discovered yet
	Gray         // on the work stack, descendants in progress
	Black        // finished, pushed to the post-order
)

var (
	// ErrGraphNil is returned when a nil *Graph is passed to an algorithm.
	ErrGraphNil = errors.New("dag: graph is nil")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, V).
	ErrVertexOutOfRange = errors.New("dag: vertex out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("dag: self-loop not allowed")

	// ErrCycleDetected indicates a back edge was found while sorting.
	ErrCycleDetected = errors.New("dag: cycle detected")

	// ErrTooFewVertices is the panic payload of New for n < 2.
	ErrTooFewVertices = errors.New("dag: graph needs at least a source and a sink")
)

// Edge is one outgoing arc held in its tail vertex's adjacency list.
type Edge struct {
	// To is the head vertex id.
	To int

	// Weight is the stored arc weight. Pyramid builders store the negated
	// cell value here so that shortest-path relaxation yields the longest sum.
	Weight int64
}

// Graph is an immutable-after-build weighted DAG over dense vertex ids.
type Graph struct {
	adj   [][]Edge // adj[u] = outgoing edges of u, insertion order
	edges int      // total edge count
}
