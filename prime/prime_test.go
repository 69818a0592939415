// SPDX-License-Identifier: MIT
package prime_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/primepath/prime"
)

// naive is the reference predicate: plain division by every 2..n-1.
func naive(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d < n; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// TestIsPrime_Table pins the documented edge cases.
func TestIsPrime_Table(t *testing.T) {
	cases := []struct {
		n    int64
		want bool
	}{
		{math.MinInt64, false},
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{25, false},
		{49, false},
		{97, true},
		{121, false},
		{7919, true},
		{1_000_000_007, true},
		{1_000_000_007 * 3, false},
		{math.MaxInt64, false}, // 2^63-1 = 7² × 73 × …
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, prime.IsPrime(tc.n), "IsPrime(%d)", tc.n)
	}
}

// TestIsPrime_MatchesNaive sweeps a dense range against the reference.
func TestIsPrime_MatchesNaive(t *testing.T) {
	for n := int64(-10); n <= 2000; n++ {
		assert.Equalf(t, naive(n), prime.IsPrime(n), "IsPrime(%d)", n)
	}
}

// TestComposite checks the complement predicate.
func TestComposite(t *testing.T) {
	assert.False(t, prime.Composite(1))
	assert.False(t, prime.Composite(-4))
	assert.False(t, prime.Composite(13))
	assert.True(t, prime.Composite(15))
}
