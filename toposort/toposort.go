package toposort

import (
	"github.com/katalvlaran/graphkit/core"
)

// Sort computes a topological ordering of g using Kahn's algorithm.
// A cyclic graph is not an error: the returned Result simply holds a short
// order and Complete() reports false.
// Returns ErrGraphNil, ErrUndirected, or ErrBadSeedOrder for invalid input,
// or the context's error on cancellation.
func Sort(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := g.NodeCount()
	seeds, err := seedOrder(o.SeedOrder, n)
	if err != nil {
		return nil, err
	}

	// in-degree of every node over forward adjacency
	inDegree := make([]int, n)
	for u := 0; u < n; u++ {
		for v := range g.Neighbors(u) {
			inDegree[v]++
		}
	}

	// seed the FIFO with ready nodes, in the caller-controlled scan order
	queue := make([]int, 0, n)
	for _, v := range seeds {
		if inDegree[v] == 0 {
			queue = append(queue, v)
		}
	}

	res := &Result{Order: make([]int, 0, n), nodeCount: n}
	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		u := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, u)

		for v := range g.Neighbors(u) {
			inDegree[v]--
			if inDegree[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	return res, nil
}

// seedOrder validates a caller-supplied scan order, or builds the default
// ascending one.
func seedOrder(custom []int, n int) ([]int, error) {
	if custom == nil {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}

		return order, nil
	}
	if len(custom) != n {
		return nil, ErrBadSeedOrder
	}
	seen := make([]bool, n)
	for _, v := range custom {
		if v < 0 || v >= n || seen[v] {
			return nil, ErrBadSeedOrder
		}
		seen[v] = true
	}

	return custom, nil
}
