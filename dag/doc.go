// Package dag is a minimal, index-based weighted DAG arena with an
// iterative topological sort.
//
// What:
//
//   - Graph: V dense vertex ids, per-vertex outgoing arc lists, int64 weights.
//     Vertex 0 is the synthetic source, V-1 the synthetic sink.
//   - TopologicalSort: DFS from every unvisited id in ascending order,
//     post-order reversed, explicit work stack (no recursion).
//
// Why:
//
//   - Pyramid builders address cells by arithmetic, so ids are dense ints
//     and a slice arena beats string-keyed maps.
//   - Longest-path relaxation needs a topological order and nothing else.
//
// Complexity:
//
//   - New:             O(V)
//   - AddEdge:         O(1) amortized
//   - InDegrees:       O(V+E)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrVertexOutOfRange  arc endpoint outside [0, V)
//   - ErrSelfLoop          arc from a vertex to itself
//   - ErrCycleDetected     back edge found while sorting
package dag
