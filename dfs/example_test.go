package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dfs"
)

// ExampleDFS walks a small directed tree and prints discovery and finish
// orders; Finished is the classic post-order.
func ExampleDFS() {
	//	      0
	//	    ┌─┴─┐
	//	    1   2
	//	  ┌─┴─┐
	//	  3   4
	g, _ := core.NewGraph(5, core.WithDirected(true))
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 1)
	g.AddEdge(1, 3, 1)
	g.AddEdge(1, 4, 1)

	res, _ := dfs.DFS(g, []int{0})
	fmt.Println("order:   ", res.Order)
	fmt.Println("finished:", res.Finished)
	// Output:
	// order:    [0 1 3 4 2]
	// finished: [3 4 1 2 0]
}

// ExampleDFS_earlyStop hunts for one target node and stops the walk the
// moment it is found.
func ExampleDFS_earlyStop() {
	g, _ := core.NewGraph(6)
	for i := 0; i < 5; i++ {
		g.AddEdge(i, i+1, 1)
	}

	const target = 3
	res, _ := dfs.DFS(g, []int{0}, dfs.WithOnVisit(func(id, _ int) error {
		if id == target {
			return dfs.ErrStop
		}

		return nil
	}))
	fmt.Println(res.Order)
	// Output:
	// [0 1 2 3]
}
