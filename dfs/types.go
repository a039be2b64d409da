// Package dfs defines options, result types, and error definitions for
// depth-first traversal.
package dfs

import (
	"context"
	"errors"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNoSources is returned when the source list is empty and
	// WithFullTraversal was not requested.
	ErrNoSources = errors.New("dfs: at least one source node required")

	// ErrSourceNotFound indicates a source index outside [0, NodeCount).
	ErrSourceNotFound = errors.New("dfs: source node out of range")

	// ErrStop is the cooperative stop signal. Returning it from OnVisit
	// halts the traversal; the partial Result is returned with nil error.
	ErrStop = errors.New("dfs: stop traversal")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning ErrStop halts the walk cleanly; any other error aborts.
	OnVisit func(id, depth int) error

	// OnExit, if non-nil, is invoked after all of a node's descendants have
	// been explored (post-order), before it joins Result.Finished.
	OnExit func(id int) error

	// MaxDepth, if non-negative, limits descent to the given depth.
	// A depth of 0 visits only the seeds. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each edge curr→neighbor.
	// Return true to descend, false to skip the edge.
	FilterNeighbor func(curr, neighbor int) bool

	// FullTraversal, if true, continues from every unvisited node after the
	// seeds, covering disconnected components. Default is false.
	FullTraversal bool
}

// DefaultOptions returns Options with:
//   - Background context
//   - no hooks
//   - no depth limit (MaxDepth = -1)
//   - no neighbor filtering
//   - seed-only traversal (FullTraversal = false)
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        nil,
		OnExit:         nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
		FullTraversal:  false,
	}
}

// WithContext returns an Option that sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as the pre-order hook.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as the post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 visits only the seed nodes; negative means no limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters edges before descent.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that restarts DFS from each unvisited
// node after the seeds, covering disconnected components.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records nodes in discovery (pre-order) sequence.
	Order []int

	// Finished records nodes in completion (post-order) sequence.
	Finished []int

	// Depth maps each node to its distance (#edges) from its tree root;
	// -1 for unreached nodes.
	Depth []int

	// Parent maps each node to the node that discovered it; -1 for tree
	// roots and unreached nodes.
	Parent []int
}
