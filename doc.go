// Package primepath finds the maximum root-to-leaf sum through a number
// pyramid in which prime values may never be stepped on.
//
// What is primepath?
//
//	A small, dependency-light toolkit that frames the pyramid walk as a
//	longest-path query on a DAG:
//		• prime/    – the forbidding predicate (6k±1 trial division)
//		• pyramid/  – validated triangular grid + DAG builder
//		• dag/      – index-based weighted DAG arena + topological sort
//		• longest/  – longest path by negated-weight relaxation
//		• input/    – file and interactive readers for the CLI
//
// How the graph looks:
//
//	        S                 S      synthetic source (vertex 0)
//	        │-4               1..V-2 pyramid cells, row-major
//	        4                 T      synthetic sink (vertex V-1)
//	   -1 ╱   ╲ -6
//	     1     6              A cell whose value is prime gets no
//	   ╱   ╲ ╱   ╲            incoming edge, so no path can enter it.
//	  2     8     3
//	        │0
//	        T
//
// Longest path in the example is 4+6+8 = 18.
//
//	go install github.com/katalvlaran/primepath/cmd/primepath@latest
package primepath
