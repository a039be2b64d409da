// Package gridgraph defines the Grid type, its construction options, and the
// sentinel errors shared by grid operations.
package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// Connectivity selects which cells count as neighbors.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota

	// Conn8 adds the diagonals: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Option configures a Grid before construction.
type Option func(*Grid)

// WithConnectivity selects Conn4 (default) or Conn8 adjacency.
func WithConnectivity(c Connectivity) Option {
	return func(g *Grid) { g.conn = c }
}

// WithLandThreshold sets the minimum cell value considered land.
// The default is 1, so positive values are land and zero is water.
func WithLandThreshold(threshold int) Option {
	return func(g *Grid) { g.landThreshold = threshold }
}

// Grid is a rectangular 2D field of integer cell values, immutable once
// built. Width and Height fix the dimensions; cell (x, y) maps to row-major
// index y*Width + x.
type Grid struct {
	width, height int
	conn          Connectivity
	landThreshold int

	// cells[y][x] holds a private copy of the input values.
	cells [][]int

	// offsets lists the (dx, dy) neighbor deltas for the chosen connectivity.
	offsets [][2]int
}
