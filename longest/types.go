// Package longest defines options, extraction policies and results for
// the longest-path solver on pyramid DAGs.
//
// Options:
//
//	– Policy:     how the answer is extracted once relaxation is done.
//	– ReturnPath: if true, Result.Path lists the vertices of the best path.
//
// Errors (sentinel):
//
//	– ErrUnknownPolicy if ParsePolicy receives an unrecognized name.
//	– ErrSumOverflow if a reachable path sum does not fit in int64.
//
// Graph-level failures (nil graph, cyclic arena) are reported with the
// dag sentinels ErrGraphNil and ErrCycleDetected.
package longest

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPolicy indicates a policy name that ParsePolicy does not recognize.
	ErrUnknownPolicy = errors.New("longest: unknown extraction policy")

	// ErrSumOverflow indicates a relaxed path sum, or its negation, left the int64 range.
	ErrSumOverflow = errors.New("longest: path sum overflows int64")
)

// Policy selects how the maximum sum is extracted from the relaxed values.
type Policy int

const (
	// PolicyStrictSink reports a sum only when the sink itself is reachable,
	// i.e. only true source→sink paths count.
	PolicyStrictSink Policy = iota

	// PolicyFallback scans vertex ids from V-1 down to 1 and reports the
	// first reachable one. When the sink is unreachable this yields the sum
	// of a partial path, ordered by vertex id rather than by value.
	PolicyFallback
)

// Policy names accepted by ParsePolicy and produced by String.
const (
	policyStrictName   = "strict"
	policyFallbackName = "fallback"
)

// String returns the configuration name of p.
func (p Policy) String() string {
	switch p {
	case PolicyStrictSink:
		return policyStrictName
	case PolicyFallback:
		return policyFallbackName
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps "strict" or "fallback" to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case policyStrictName:
		return PolicyStrictSink, nil
	case policyFallbackName:
		return PolicyFallback, nil
	default:
		return 0, fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownPolicy, name, policyStrictName, policyFallbackName)
	}
}

// Options configures the solver.
//
// Policy     – extraction policy; default PolicyStrictSink.
// ReturnPath – if true, Result.Path is filled; default false.
type Options struct {
	Policy     Policy // extraction policy
	ReturnPath bool   // whether to reconstruct the best path
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithPolicy sets the extraction policy.
// Panics on a value outside the declared constants.
func WithPolicy(p Policy) Option {
	if p != PolicyStrictSink && p != PolicyFallback {
		panic(fmt.Sprintf("%v: %d", ErrUnknownPolicy, int(p)))
	}

	return func(o *Options) {
		o.Policy = p
	}
}

// WithReturnPath enables reconstruction of the winning path in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns the defaults:
//   - Policy:     PolicyStrictSink
//   - ReturnPath: false
func DefaultOptions() Options {
	return Options{
		Policy:     PolicyStrictSink,
		ReturnPath: false,
	}
}

// Result is the outcome of a successful Solve.
type Result struct {
	// Sum is the maximum path sum (the negation of the relaxed value).
	Sum int64

	// Vertex is the vertex whose relaxed value produced Sum: the sink under
	// PolicyStrictSink, possibly an interior vertex under PolicyFallback.
	Vertex int

	// Path lists vertex ids from the source to Vertex, inclusive.
	// Nil unless WithReturnPath was given.
	Path []int
}
