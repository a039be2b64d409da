package gridgraph

import "github.com/katalvlaran/graphkit/dsu"

// Components returns the contiguous land regions ("islands") of the Grid
// under its connectivity. Each component is a slice of row-major cell
// indices in ascending order; components are ordered by their smallest
// index. Water cells appear in no component. A grid without land returns
// an empty slice.
//
// Adjacent land cells are merged with a disjoint-set union, then one pass
// over the cells groups them by representative.
// Complexity: O(W·H·d·α(W·H)) time, O(W·H) memory.
func (g *Grid) Components() [][]int {
	total := g.width * g.height
	// total > 0 after New's validation, so the constructor cannot fail.
	forest, _ := dsu.New(total)

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] < g.landThreshold {
				continue
			}
			u := g.Index(x, y)
			for _, d := range g.offsets {
				nx, ny := x+d[0], y+d[1]
				if !g.IsLand(nx, ny) {
					continue
				}
				_, _ = forest.Union(u, g.Index(nx, ny))
			}
		}
	}

	// Group land cells by representative. Scanning in ascending index order
	// keeps both the cells within a component and the components themselves
	// sorted by smallest index.
	byRoot := make(map[int]int, 8)
	var comps [][]int
	for idx := 0; idx < total; idx++ {
		x, y := g.Coordinate(idx)
		if g.cells[y][x] < g.landThreshold {
			continue
		}
		root, _ := forest.Find(idx)
		ci, ok := byRoot[root]
		if !ok {
			ci = len(comps)
			byRoot[root] = ci
			comps = append(comps, nil)
		}
		comps[ci] = append(comps[ci], idx)
	}

	return comps
}
