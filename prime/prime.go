// SPDX-License-Identifier: MIT
// Package prime provides the primality predicate used to forbid pyramid cells.
//
// IsPrime uses 6k±1 trial division:
//
//   - n ≤ 1           → false
//   - n ∈ {2, 3}      → true
//   - 2 | n or 3 | n  → false
//   - otherwise test divisors i and i+2 for i = 5, 11, 17, … while i ≤ n/i
//
// Complexity: O(√n) time, O(1) memory.
package prime

// firstWheel is the first 6k-1 candidate divisor.
const firstWheel = 5

// wheelStep advances from 6k-1 to 6(k+1)-1.
const wheelStep = 6

// IsPrime reports whether n is a prime number.
// Negative numbers, 0 and 1 are not prime.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	// i ≤ n/i is i*i ≤ n without overflow near MaxInt64.
	for i := int64(firstWheel); i <= n/i; i += wheelStep {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// Composite is the complement of IsPrime restricted to n > 1.
// Handy when a caller wants to forbid composites instead of primes.
func Composite(n int64) bool {
	return n > 1 && !IsPrime(n)
}
