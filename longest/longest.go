// SPDX-License-Identifier: MIT
// Package longest computes the maximum-sum source path on a DAG whose arc
// weights are stored negated.
//
// Algorithm:
//
//  1. Order all vertices topologically (dag.TopologicalSort, iterative DFS).
//  2. Only the source is reached, with best[source] = 0.
//  3. For u in topological order with u reached, relax every arc
//     u→v: best[v] = min(best[v], best[u] + w), marking v reached.
//  4. Extract per Policy and negate: minimizing negated weights is
//     maximizing the cell-value sum.
//
// Vertices that are never reached (forbidden cells, anything below them
// only) are skipped in step 3, which keeps them inert. Reachability is
// tracked apart from best, so every int64 is a valid relaxed value; a sum
// that does not fit in int64 is reported as ErrSumOverflow.
//
// Complexity:
//
//   - Time:  O(V + E)
//   - Space: O(V) for order, best and (optionally) predecessors.
//
// All state lives in a per-call runner; the graph is only read, so Solve is
// reentrant and repeated calls return identical results.
package longest

import (
	"fmt"
	"math"

	"github.com/katalvlaran/primepath/dag"
)

// noPredecessor marks a vertex without a recorded predecessor.
const noPredecessor = -1

// Solve returns the maximum path sum from dag.Source under the configured
// policy. ok == false means no admissible path exists; that is a normal
// outcome, not an error.
//
// err is non-nil for a nil graph (dag.ErrGraphNil), a cyclic arena
// (dag.ErrCycleDetected) or a reachable path sum outside int64
// (ErrSumOverflow). Only the last can happen for pyramid.Build graphs.
func Solve(g *dag.Graph, opts ...Option) (res Result, ok bool, err error) {
	// 1) Resolve options (last wins).
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Relax in topological order.
	r, err := newRunner(g, cfg)
	if err != nil {
		return Result{}, false, err
	}
	if err = r.process(); err != nil {
		return Result{}, false, err
	}

	// 3) Extract.
	v, found := r.extract()
	if !found {
		return Result{}, false, nil
	}
	// -MinInt64 is not representable.
	if r.best[v] == math.MinInt64 {
		return Result{}, false, fmt.Errorf("%w: vertex %d", ErrSumOverflow, v)
	}
	res = Result{Sum: -r.best[v], Vertex: v}
	if cfg.ReturnPath {
		res.Path = r.path(v)
	}

	return res, true, nil
}

// Distances returns the raw relaxation vectors: reached[v] reports whether
// any path from the source ends at v, and best[v] is then the minimum
// negated-weight distance. best[v] is 0 where reached[v] is false.
// best[dag.Source] is always 0 and reached[dag.Source] always true.
func Distances(g *dag.Graph) (best []int64, reached []bool, err error) {
	r, err := newRunner(g, DefaultOptions())
	if err != nil {
		return nil, nil, err
	}
	if err = r.process(); err != nil {
		return nil, nil, err
	}

	return r.best, r.reached, nil
}

// runner holds the mutable state for a single solve.
type runner struct {
	g       *dag.Graph // read-only input
	options Options
	order   []int   // topological order
	best    []int64 // best[v] = current minimum negated sum, valid when reached[v]
	reached []bool  // reached[v] = some relaxed arc ends at v
	prev    []int   // prev[v] = predecessor on the best path; nil unless ReturnPath
}

// newRunner sorts g and initializes best, reached (and prev when requested).
func newRunner(g *dag.Graph, cfg Options) (*runner, error) {
	order, err := dag.TopologicalSort(g)
	if err != nil {
		return nil, err
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		order:   order,
		best:    make([]int64, n),
		reached: make([]bool, n),
	}
	r.reached[dag.Source] = true

	if cfg.ReturnPath {
		r.prev = make([]int, n)
		for v := range r.prev {
			r.prev[v] = noPredecessor
		}
	}

	return r, nil
}

// process relaxes every reachable vertex in topological order.
func (r *runner) process() error {
	for _, u := range r.order {
		// Unreached vertices stay inert.
		if !r.reached[u] {
			continue
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every successor of u.
// Strict "<" keeps the first-found predecessor on ties.
func (r *runner) relax(u int) error {
	for _, e := range r.g.Edges(u) {
		cand, ok := addInt64(r.best[u], e.Weight)
		if !ok {
			return fmt.Errorf("%w: arc %d→%d", ErrSumOverflow, u, e.To)
		}
		if r.reached[e.To] && cand >= r.best[e.To] {
			continue
		}
		r.best[e.To] = cand
		r.reached[e.To] = true
		if r.prev != nil {
			r.prev[e.To] = u
		}
	}

	return nil
}

// addInt64 returns a+b and false when the sum wraps.
func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	// Overflow iff both operands share a sign the sum does not.
	if (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0) {
		return sum, false
	}

	return sum, true
}

// extract picks the vertex whose value is reported under the policy.
func (r *runner) extract() (int, bool) {
	sink := r.g.Sink()
	if r.options.Policy == PolicyStrictSink {
		return sink, r.reached[sink]
	}
	// The source is excluded: its own 0 is not a path through the pyramid.
	for v := sink; v > dag.Source; v-- {
		if r.reached[v] {
			return v, true
		}
	}

	return 0, false
}

// path walks prev back from v to the source and returns it source-first.
func (r *runner) path(v int) []int {
	var out []int
	for at := v; at != noPredecessor; at = r.prev[at] {
		out = append(out, at)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
