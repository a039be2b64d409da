package gridgraph

import "github.com/katalvlaran/graphkit/core"

// conn4Offsets and conn8Offsets are the neighbor deltas, clockwise from
// north. Conn8 interleaves the diagonals.
var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// New constructs a Grid from a non-empty rectangular 2D slice. The values
// are deep-copied, so the caller's slice stays untouched and later mutation
// of it cannot affect the Grid.
// Returns ErrEmptyGrid when the input has no rows or no columns, and
// ErrNonRectangular when any row length differs from the first.
// Complexity: O(W·H) time and memory.
func New(values [][]int, opts ...Option) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	cells := make([][]int, h)
	for y := range values {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	g := &Grid{
		width:         w,
		height:        h,
		conn:          Conn4,
		landThreshold: 1,
		cells:         cells,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.conn == Conn8 {
		g.offsets = conn8Offsets
	} else {
		g.offsets = conn4Offsets
	}

	return g, nil
}

// Width reports the number of columns.
func (g *Grid) Width() int { return g.width }

// Height reports the number of rows.
func (g *Grid) Height() int { return g.height }

// Value returns the cell value at (x, y). Callers must pass in-bounds
// coordinates; use InBounds to check first.
func (g *Grid) Value(x, y int) int { return g.cells[y][x] }

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsLand reports whether the cell at (x, y) meets the land threshold.
// Out-of-bounds coordinates are water.
func (g *Grid) IsLand(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x] >= g.landThreshold
}

// Index maps (x, y) to its row-major node index: y*Width + x.
func (g *Grid) Index(x, y int) int { return y*g.width + x }

// Coordinate converts a row-major index back to (x, y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// ToGraph converts the Grid into an undirected unit-weight *core.Graph with
// Width·Height nodes, one per cell, indexed row-major. Every in-bounds
// neighbor pair under the Grid's connectivity becomes one edge; land status
// is ignored, so the result covers the full rectangle.
// Complexity: O(W·H·d) time, where d is 4 or 8.
func (g *Grid) ToGraph() *core.Graph {
	// Dimensions were validated in New, so NewGraph cannot fail here.
	cg, _ := core.NewGraph(g.width * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			u := g.Index(x, y)
			for _, d := range g.offsets {
				nx, ny := x+d[0], y+d[1]
				if !g.InBounds(nx, ny) {
					continue
				}
				// Add each undirected pair once, from the lower index.
				if v := g.Index(nx, ny); u < v {
					_ = cg.AddEdge(u, v, 1)
				}
			}
		}
	}

	return cg
}
