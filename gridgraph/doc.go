// Package gridgraph treats a rectangular 2D grid of integer cell values as a
// graph. Cells with value ≥ LandThreshold are "land"; everything below is
// "water". The package offers:
//
//   - Four- or eight-neighbor connectivity (Conn4, the default, or Conn8)
//   - ToGraph — conversion to an undirected unit-weight *core.Graph over
//     row-major cell indices, ready for any engine in this module
//   - DistanceToLand — per-cell step count to the nearest land cell,
//     computed as one multi-source breadth-first flood from all land at once
//   - Components — the contiguous land regions ("islands"), found with a
//     disjoint-set union over adjacent land cells
//
// A Grid deep-copies its input and is immutable after construction; the
// original slice can be reused or mutated freely by the caller.
//
// Cell (x, y) maps to index y*Width + x. Index and Coordinate convert
// between the two forms.
//
// Example, Conn4 distances on a 3×3 grid with land in the center:
//
//	0 0 0        2 1 2
//	0 1 0   →    1 0 1
//	0 0 0        2 1 2
//
// See example_test.go for runnable versions.
package gridgraph
