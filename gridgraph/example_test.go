package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/graphkit/gridgraph"
)

// ExampleGrid_DistanceToLand floods a 3×3 all-water grid from the single
// land cell in its center. Orthogonal neighbors are 1 step away, corners 2.
func ExampleGrid_DistanceToLand() {
	g, _ := gridgraph.New([][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})

	dist := g.DistanceToLand()
	for y := 0; y < g.Height(); y++ {
		row := dist[y*g.Width() : (y+1)*g.Width()]
		fmt.Println(row)
	}
	// Output:
	// [2 1 2]
	// [1 0 1]
	// [2 1 2]
}

// ExampleGrid_Components counts the islands of a small archipelago. The two
// regions touch only at a diagonal, so Conn4 sees two islands.
func ExampleGrid_Components() {
	g, _ := gridgraph.New([][]int{
		{1, 1, 0},
		{0, 1, 0},
		{0, 0, 1},
	})

	comps := g.Components()
	fmt.Println("islands:", len(comps))
	for i, comp := range comps {
		fmt.Printf("island %d: %v\n", i, comp)
	}
	// Output:
	// islands: 2
	// island 0: [0 1 4]
	// island 1: [8]
}
