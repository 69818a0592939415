// SPDX-License-Identifier: MIT
// Package: primepath/pyramid
//
// build.go: conversion of a Pyramid into a *dag.Graph.
//
// Canonical model:
//   • V = N(N+1)/2 + 2; vertex 0 = source, V-1 = sink, cells via VertexOf.
//   • A cell whose value is forbidden receives NO incoming arc. The vertex
//     itself stays in the arena and keeps any outgoing arcs its children
//     add, so ids never shift and the forbidden vertex is simply unreachable.
//   • Row 1: source → (1,0) with weight -value, unless forbidden. Rows 2..N
//     are built either way.
//   • Row i ≥ 2, position j: arc from left parent (i-1, j-1) when j > 0,
//     then from right parent (i-1, j) when j < i-1; weight -value.
//   • Row N: every admissible cell gets one zero-weight arc to the sink.
//
// Complexity:
//   • Time: O(N²) cells, at most 2 incoming arcs + 1 sink arc each.
//   • Space: O(V + E) for the arena.
//
// Determinism:
//   • Cells are visited row-major; per cell the order is left parent,
//     right parent, sink. Arc lists are therefore stable for equal input.

package pyramid

import (
	"github.com/katalvlaran/primepath/dag"
	"github.com/katalvlaran/primepath/prime"
)

// Build converts p into a weighted DAG under the forbidding predicate.
// A nil forbidden defaults to prime.IsPrime. p must be non-nil (use New).
// Build has no error conditions and never mutates p.
func Build(p *Pyramid, forbidden ForbidFunc) *dag.Graph {
	if forbidden == nil {
		forbidden = prime.IsPrime
	}
	n := p.Rows()
	g := dag.New(p.VertexCount())
	sink := g.Sink()

	for i := 1; i <= n; i++ {
		for j := 0; j < i; j++ {
			value := p.Value(i, j)
			// Forbidden: no incoming arcs, no sink arc.
			if forbidden(value) {
				continue
			}
			v := VertexOf(i, j)
			w := -value

			// Endpoints are in range by construction; AddEdge cannot fail here.
			if i == 1 {
				_ = g.AddEdge(dag.Source, v, w)
			} else {
				if j > 0 {
					_ = g.AddEdge(VertexOf(i-1, j-1), v, w)
				}
				if j < i-1 {
					_ = g.AddEdge(VertexOf(i-1, j), v, w)
				}
			}
			if i == n {
				_ = g.AddEdge(v, sink, 0)
			}
		}
	}

	return g
}

// BuildRows validates rows with New and converts them with Build.
func BuildRows(rows [][]int64, forbidden ForbidFunc) (*dag.Graph, error) {
	p, err := New(rows)
	if err != nil {
		return nil, err
	}

	return Build(p, forbidden), nil
}

// ForbiddenCount returns how many cells of p the predicate forbids.
// A nil forbidden defaults to prime.IsPrime.
// Complexity: O(N²).
func ForbiddenCount(p *Pyramid, forbidden ForbidFunc) int {
	if forbidden == nil {
		forbidden = prime.IsPrime
	}
	count := 0
	for _, row := range p.cells {
		for _, value := range row {
			if forbidden(value) {
				count++
			}
		}
	}

	return count
}
