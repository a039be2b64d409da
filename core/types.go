// Package core defines the Graph type, its construction options, and the
// sentinel errors shared by graph construction.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrBadNodeCount indicates a negative node count was passed to NewGraph.
	ErrBadNodeCount = errors.New("core: node count must be non-negative")

	// ErrInvalidNode indicates an edge endpoint outside [0, NodeCount).
	ErrInvalidNode = errors.New("core: node index out of range")
)

// Edge records one edge as supplied to AddEdge.
//
// For undirected graphs each edge is recorded once (From, To as given),
// even though adjacency mirrors it in both directions.
type Edge struct {
	// From is the source node index.
	From int

	// To is the destination node index.
	To int

	// Weight is the cost or capacity of the edge. Unweighted callers pass 1.
	Weight int64
}

// halfEdge is one adjacency entry: the far endpoint and the edge weight.
type halfEdge struct {
	to     int
	weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the Graph
// (true = directed, false = undirected, the default).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the in-memory adjacency-list graph all engines operate on.
//
// Nodes are the integers [0, NodeCount); the count is fixed at construction.
// Adjacency rows preserve insertion order. Once built, a Graph is never
// mutated by any algorithm in this module.
type Graph struct {
	directed bool

	// adj[u] lists u's outgoing entries in insertion order.
	adj [][]halfEdge

	// edges records every AddEdge call in order, one entry per call.
	edges []Edge
}

// NewGraph creates a Graph with nodeCount nodes and no edges.
// By default the Graph is undirected.
// Returns ErrBadNodeCount if nodeCount is negative.
// Complexity: O(V).
func NewGraph(nodeCount int, opts ...GraphOption) (*Graph, error) {
	if nodeCount < 0 {
		return nil, ErrBadNodeCount
	}
	g := &Graph{
		adj: make([][]halfEdge, nodeCount),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
