package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphkit/bfs"
	"github.com/katalvlaran/graphkit/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid
// (9 nodes, row-major ids). The walk starts at the top-left corner and
// expands in non-decreasing Manhattan distance.
func ExampleBFS_gridTraversal() {
	g, _ := core.NewGraph(9)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			id := r*3 + c
			if c+1 < 3 {
				g.AddEdge(id, id+1, 1) // right neighbor
			}
			if r+1 < 3 {
				g.AddEdge(id, id+3, 1) // down neighbor
			}
		}
	}

	res, err := bfs.BFS(g, []int{0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
}

// ExampleBFS_multiSource floods a chain from both ends at once; every node
// reports the hop distance to whichever end is nearer.
func ExampleBFS_multiSource() {
	g, _ := core.NewGraph(5)
	for i := 0; i < 4; i++ {
		g.AddEdge(i, i+1, 1)
	}

	res, _ := bfs.BFS(g, []int{0, 4})
	fmt.Println(res.Depth)
	// Output:
	// [0 1 2 1 0]
}
