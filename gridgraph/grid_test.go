package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/graphkit/gridgraph"
)

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopy ensures later mutation of the input slice cannot leak
// into the Grid.
func TestNew_DeepCopy(t *testing.T) {
	values := [][]int{
		{0, 1},
		{1, 0},
	}
	g, err := gridgraph.New(values)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	values[0][1] = 99
	if got := g.Value(1, 0); got != 1 {
		t.Errorf("Value(1,0) = %d after input mutation; want 1", got)
	}
}

// TestInBounds checks bounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.New([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		if !g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d) = false; want true", xy[0], xy[1])
		}
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d) = true; want false", xy[0], xy[1])
		}
	}
}

// TestIndexCoordinate_RoundTrip walks every cell of a 4×3 grid.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	g, err := gridgraph.New([][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			idx := g.Index(x, y)
			gx, gy := g.Coordinate(idx)
			if gx != x || gy != y {
				t.Errorf("Coordinate(Index(%d,%d)) = (%d,%d)", x, y, gx, gy)
			}
		}
	}
}

// TestToGraph_EdgeCounts checks the converted graph's shape under both
// connectivities on a 2×2 grid: Conn4 yields the 4 sides of the square,
// Conn8 adds the 2 diagonals.
func TestToGraph_EdgeCounts(t *testing.T) {
	values := [][]int{
		{1, 0},
		{0, 1},
	}

	g4, err := gridgraph.New(values)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	cg4 := g4.ToGraph()
	if cg4.NodeCount() != 4 {
		t.Errorf("Conn4 NodeCount = %d; want 4", cg4.NodeCount())
	}
	if cg4.EdgeCount() != 4 {
		t.Errorf("Conn4 EdgeCount = %d; want 4", cg4.EdgeCount())
	}
	if cg4.Directed() {
		t.Error("ToGraph produced a directed graph")
	}

	g8, err := gridgraph.New(values, gridgraph.WithConnectivity(gridgraph.Conn8))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := g8.ToGraph().EdgeCount(); got != 6 {
		t.Errorf("Conn8 EdgeCount = %d; want 6", got)
	}
}

// TestDistanceToLand_CenterLand floods a 3×3 grid from its center cell.
func TestDistanceToLand_CenterLand(t *testing.T) {
	values := [][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}

	g4, err := gridgraph.New(values)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	want4 := []int{
		2, 1, 2,
		1, 0, 1,
		2, 1, 2,
	}
	if got := g4.DistanceToLand(); !reflect.DeepEqual(got, want4) {
		t.Errorf("Conn4 DistanceToLand = %v; want %v", got, want4)
	}

	g8, err := gridgraph.New(values, gridgraph.WithConnectivity(gridgraph.Conn8))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	want8 := []int{
		1, 1, 1,
		1, 0, 1,
		1, 1, 1,
	}
	if got := g8.DistanceToLand(); !reflect.DeepEqual(got, want8) {
		t.Errorf("Conn8 DistanceToLand = %v; want %v", got, want8)
	}
}

// TestDistanceToLand_Degenerate covers all-water and all-land grids.
func TestDistanceToLand_Degenerate(t *testing.T) {
	water, err := gridgraph.New([][]int{{0, 0}, {0, 0}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got, want := water.DistanceToLand(), []int{-1, -1, -1, -1}; !reflect.DeepEqual(got, want) {
		t.Errorf("all-water DistanceToLand = %v; want %v", got, want)
	}

	land, err := gridgraph.New([][]int{{1, 1}, {1, 1}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got, want := land.DistanceToLand(), []int{0, 0, 0, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("all-land DistanceToLand = %v; want %v", got, want)
	}
}

// TestDistanceToLand_Threshold checks that WithLandThreshold reclassifies
// low-valued cells as water.
func TestDistanceToLand_Threshold(t *testing.T) {
	g, err := gridgraph.New([][]int{{1, 0, 5}}, gridgraph.WithLandThreshold(5))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	want := []int{2, 1, 0}
	if got := g.DistanceToLand(); !reflect.DeepEqual(got, want) {
		t.Errorf("DistanceToLand = %v; want %v", got, want)
	}
}

// TestComponents_Islands counts islands on a grid where two regions touch
// only diagonally: Conn4 keeps them apart, Conn8 merges them.
func TestComponents_Islands(t *testing.T) {
	values := [][]int{
		{1, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 1},
	}

	g4, err := gridgraph.New(values)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	want4 := [][]int{
		{0, 1, 5},
		{10, 11},
	}
	if got := g4.Components(); !reflect.DeepEqual(got, want4) {
		t.Errorf("Conn4 Components = %v; want %v", got, want4)
	}

	g8, err := gridgraph.New(values, gridgraph.WithConnectivity(gridgraph.Conn8))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	want8 := [][]int{
		{0, 1, 5, 10, 11},
	}
	if got := g8.Components(); !reflect.DeepEqual(got, want8) {
		t.Errorf("Conn8 Components = %v; want %v", got, want8)
	}
}

// TestComponents_NoLand returns no components for an all-water grid.
func TestComponents_NoLand(t *testing.T) {
	g, err := gridgraph.New([][]int{{0, 0}, {0, 0}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := g.Components(); len(got) != 0 {
		t.Errorf("Components = %v; want none", got)
	}
}
