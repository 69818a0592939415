package pyramid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/primepath/pyramid"
)

// BenchmarkBuild measures DAG construction on a 1000-row pyramid
// (~500k cells) with values in [0, 1000).
// Complexity: O(N²)
func BenchmarkBuild(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	p, err := pyramid.New(randomPyramid(rng, n, 1000))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pyramid.Build(p, nil)
	}
}
