// SPDX-License-Identifier: MIT
// Package dag provides topological sort over the index arena.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every arc u→v, u appears before v. Roots are tried in ascending id
// order 0..V-1, so isolated vertices (forbidden cells with no incoming
// arc) are still covered. Finished vertices are pushed to a post-order
// and the post-order is reversed at the end.
//
// The traversal keeps an explicit stack of frames (vertex, next arc
// index) instead of recursing, so depth is bounded by heap memory only.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex pushed once, each arc scanned once)
//   - Memory: O(V)     (colour slice, frame stack, order)
package dag

// frame is one level of the simulated recursion.
type frame struct {
	v    int // vertex being expanded
	next int // index of the next arc of v to inspect
}

// topoSorter encapsulates state for one topological sort call.
type topoSorter struct {
	graph *Graph
	state []int   // White / Gray / Black per vertex
	stack []frame // explicit DFS work stack
	order []int   // post-order
}

// TopologicalSort returns every vertex of g in topological order.
// If g is nil, returns ErrGraphNil.
// If a cycle is found, returns ErrCycleDetected.
func TopologicalSort(g *Graph) ([]int, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Initialize sorter state (all vertices start White)
	n := g.VertexCount()
	sorter := &topoSorter{
		graph: g,
		state: make([]int, n),
		stack: make([]frame, 0, 16),
		order: make([]int, 0, n),
	}
	// 3. Drive DFS from every unvisited vertex, ascending ids
	for v := 0; v < n; v++ {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 4. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit runs one DFS tree rooted at root.
func (t *topoSorter) visit(root int) error {
	t.state[root] = Gray
	t.stack = append(t.stack, frame{v: root})

	for len(t.stack) > 0 {
		top := &t.stack[len(t.stack)-1]
		out := t.graph.successors(top.v)

		// All arcs explored: finish the vertex.
		if top.next >= len(out) {
			t.state[top.v] = Black
			t.order = append(t.order, top.v)
			t.stack = t.stack[:len(t.stack)-1]
			continue
		}

		to := out[top.next].To
		top.next++
		switch t.state[to] {
		case White:
			t.state[to] = Gray
			// top may dangle after append; it is not used again this iteration.
			t.stack = append(t.stack, frame{v: to})
		case Gray:
			return ErrCycleDetected
		}
	}

	return nil
}
