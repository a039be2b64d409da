// Package dijkstra defines result types, configuration options, and
// sentinel errors for the shortest-path engine.
package dijkstra

import (
	"errors"
	"math"
)

// Inf is the "unreachable" sentinel stored in Result.Dist for nodes the
// search never finalized.
const Inf = int64(math.MaxInt64)

// Sentinel errors returned by this package.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates the source index is out of range.
	ErrSourceNotFound = errors.New("dijkstra: source node out of range")

	// ErrNegativeWeight indicates a negative edge weight was touched during
	// relaxation. Detection is lazy: edges the search never reaches are not
	// inspected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadHopLimit indicates WithHopLimit was given a negative value.
	ErrBadHopLimit = errors.New("dijkstra: hop limit must be non-negative")

	// ErrBadMaxDistance indicates WithMaxDistance was given a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNilProbFn indicates MaxProbability was called with a nil
	// edge-probability function.
	ErrNilProbFn = errors.New("dijkstra: probability function is nil")

	// ErrBadProbability indicates an edge probability outside [0, 1].
	ErrBadProbability = errors.New("dijkstra: edge probability must be in [0, 1]")
)

// Options configures the behavior of the shortest-path engine.
//
// ReturnPath  – if true, build the predecessor table (ignored under a hop limit).
// HopLimit    – maximum intermediate stops per path; -1 means unlimited.
// MaxDistance – costs beyond this cap are not explored. Default math.MaxInt64.
type Options struct {
	ReturnPath  bool
	HopLimit    int
	MaxDistance int64
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor table in the Result.
// It has no effect when a hop limit is active.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithHopLimit restricts every path to at most k intermediate stops
// (k+1 edges). k = 0 allows direct edges only.
// Negative values panic with ErrBadHopLimit: invalid configuration is a
// programming error, caught at option-construction time.
func WithHopLimit(k int) Option {
	return func(o *Options) {
		if k < 0 {
			panic(ErrBadHopLimit.Error())
		}
		o.HopLimit = k
	}
}

// WithMaxDistance sets a cost cap: nodes whose best cost would exceed it are
// not explored. Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no hop limit, no distance cap, and no
// predecessor table.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		HopLimit:    -1,
		MaxDistance: math.MaxInt64,
	}
}

// Result is the outcome of one shortest-path run.
type Result struct {
	// Dist holds the minimum cost from the source per node, Inf when
	// unreachable (or unreachable within the hop limit).
	Dist []int64

	// Prev holds the predecessor of each node on its cheapest path, -1 for
	// the source and unreachable nodes. Nil unless WithReturnPath was set
	// and no hop limit is active.
	Prev []int
}

// PathTo reconstructs the cheapest path from the source to dest by walking
// Prev links. Returns nil when Prev was not built or dest is unreachable.
func (r *Result) PathTo(dest int) []int {
	if r.Prev == nil || dest < 0 || dest >= len(r.Dist) || r.Dist[dest] == Inf {
		return nil
	}
	path := []int{}
	for cur := dest; cur != -1; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
