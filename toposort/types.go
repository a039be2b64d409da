// Package toposort defines options, the result type, and sentinel errors
// for topological sorting.
package toposort

import (
	"context"
	"errors"
)

// Sentinel errors for topological sorting.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Sort.
	ErrGraphNil = errors.New("toposort: graph is nil")

	// ErrUndirected is returned for undirected graphs.
	ErrUndirected = errors.New("toposort: directed graph required")

	// ErrBadSeedOrder is returned when WithSeedOrder is not a permutation
	// of [0, NodeCount).
	ErrBadSeedOrder = errors.New("toposort: seed order must be a permutation of all nodes")
)

// Option configures optional behavior of Sort.
type Option func(*Options)

// Options holds configurable parameters for topological sorting.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// SeedOrder, if non-nil, fixes the order of the initial
	// zero-in-degree scan. Must be a permutation of [0, NodeCount).
	SeedOrder []int
}

// DefaultOptions returns Options with a Background context and the default
// ascending-id seed scan.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		SeedOrder: nil,
	}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeedOrder returns an Option fixing the order in which nodes are
// examined during the initial zero-in-degree scan. Useful when the caller
// needs a specific tie-break among independent nodes (e.g. recovering an
// alphabet ordering).
func WithSeedOrder(order []int) Option {
	return func(o *Options) {
		o.SeedOrder = order
	}
}

// Result holds the outcome of one topological sort.
type Result struct {
	// Order is the computed sequence. Shorter than the node count exactly
	// when the graph contains a cycle.
	Order []int

	nodeCount int
}

// Complete reports whether every node made it into Order, i.e. whether the
// graph is a DAG. A false return is the cycle signal.
func (r *Result) Complete() bool {
	return len(r.Order) == r.nodeCount
}
