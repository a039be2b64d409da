// Package bridges defines the output edge type and sentinel errors for
// bridge and articulation-point detection.
package bridges

import "errors"

// Sentinel errors for bridge detection.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("bridges: graph is nil")

	// ErrDirected is returned for directed graphs; bridges and articulation
	// points are defined on undirected graphs.
	ErrDirected = errors.New("bridges: undirected graph required")
)

// Edge is one bridge, reported as the DFS tree edge (U, V) with U the
// parent side. Order within the returned slice is not significant.
type Edge struct {
	U, V int
}
