package longest_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/primepath/longest"
	"github.com/katalvlaran/primepath/pyramid"
)

// BenchmarkSolve measures topological sort + relaxation on a 1000-row
// pyramid (~500k vertices, ~1M arcs).
// Complexity: O(V+E)
func BenchmarkSolve(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	g, err := pyramid.BuildRows(randomRows(rng, n, 1000), nil)
	if err != nil {
		b.Fatalf("setup BuildRows failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := longest.Solve(g); err != nil {
			b.Fatal(err)
		}
	}
}
