// SPDX-License-Identifier: MIT
// Package: primepath/dag
//
// graph.go: construction and read-only queries.
//
// Determinism:
//   • Edges(u) returns edges in insertion order.
//   • InDegrees() is a single O(V+E) pass.
// Ownership:
//   • Every accessor returns copies; callers can never mutate the arena.

package dag

import "fmt"

// New allocates a graph with n vertices and no edges.
// It panics if n < 2, since every graph carries a source and a sink.
// Complexity: O(n).
func New(n int) *Graph {
	if n < minVertices {
		panic(fmt.Sprintf("%v: n=%d", ErrTooFewVertices, n))
	}

	return &Graph{adj: make([][]Edge, n)}
}

// AddEdge appends the arc from→to with the given weight.
// Parallel arcs are accepted; the pyramid topology never produces them.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	if !g.valid(from) || !g.valid(to) {
		return fmt.Errorf("%w: %d→%d (V=%d)", ErrVertexOutOfRange, from, to, len(g.adj))
	}
	if from == to {
		return fmt.Errorf("%w: %d", ErrSelfLoop, from)
	}
	g.adj[from] = append(g.adj[from], Edge{To: to, Weight: weight})
	g.edges++

	return nil
}

// VertexCount returns V.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of arcs.
func (g *Graph) EdgeCount() int { return g.edges }

// Sink returns the id of the synthetic sink vertex (V-1).
func (g *Graph) Sink() int { return len(g.adj) - 1 }

// Edges returns a copy of u's outgoing arcs, or nil when u is out of range.
// Complexity: O(deg(u)).
func (g *Graph) Edges(u int) []Edge {
	if !g.valid(u) {
		return nil
	}
	out := make([]Edge, len(g.adj[u]))
	copy(out, g.adj[u])

	return out
}

// OutDegree returns the number of arcs leaving u (0 when out of range).
func (g *Graph) OutDegree(u int) int {
	if !g.valid(u) {
		return 0
	}

	return len(g.adj[u])
}

// InDegrees returns in[v] = number of arcs entering v, for every vertex.
// Complexity: O(V+E).
func (g *Graph) InDegrees() []int {
	in := make([]int, len(g.adj))
	for _, out := range g.adj {
		for _, e := range out {
			in[e.To]++
		}
	}

	return in
}

// HasEdge reports whether at least one arc u→v exists.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// Weight returns the weight of the first arc u→v.
// Complexity: O(deg(u)).
func (g *Graph) Weight(u, v int) (int64, bool) {
	if !g.valid(u) {
		return 0, false
	}
	for _, e := range g.adj[u] {
		if e.To == v {
			return e.Weight, true
		}
	}

	return 0, false
}

// valid reports whether v names a vertex of g.
func (g *Graph) valid(v int) bool {
	return v >= 0 && v < len(g.adj)
}

// successors exposes u's arcs without copying; package-internal only.
func (g *Graph) successors(u int) []Edge {
	return g.adj[u]
}
