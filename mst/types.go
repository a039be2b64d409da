// Package mst defines the sentinel errors shared by Kruskal and Prim.
package mst

import "errors"

// ErrGraphNil is returned when the input graph is nil.
var ErrGraphNil = errors.New("mst: graph is nil")

// ErrDirected is returned when the input graph is directed; spanning trees
// are defined on undirected graphs only.
var ErrDirected = errors.New("mst: graph must be undirected")

// ErrRootNotFound is returned by Prim when the root index is outside
// [0, NodeCount).
var ErrRootNotFound = errors.New("mst: root node not found")

// ErrDisconnected is returned when no spanning tree exists: the graph has
// zero nodes, or more than one connected component.
var ErrDisconnected = errors.New("mst: graph is disconnected")
