package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// frame is one explicit-stack record: a node plus its position in its own
// adjacency snapshot. Replacing recursion with frames bounds native stack
// usage on arbitrarily deep graphs.
type frame struct {
	id     int
	depth  int
	nbrs   []int
	cursor int
}

// walker encapsulates mutable DFS state for one call.
type walker struct {
	graph   *core.Graph
	opts    Options
	stack   []frame
	visited []bool
	res     *Result
}

// DFS performs depth-first search on g from the given source nodes, in
// order; already-visited sources are skipped. With WithFullTraversal the
// sweep then continues from every remaining unvisited node in ascending id.
// Returns the Result, or an error for invalid input, cancellation, or a
// non-ErrStop hook failure.
func DFS(g *core.Graph, sources []int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if len(sources) == 0 && !o.FullTraversal {
		return nil, ErrNoSources
	}
	for _, s := range sources {
		if !g.HasNode(s) {
			return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, s)
		}
	}

	n := g.NodeCount()
	res := &Result{
		Order:    make([]int, 0, n),
		Finished: make([]int, 0, n),
		Depth:    make([]int, n),
		Parent:   make([]int, n),
	}
	for i := range res.Depth {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	w := &walker{graph: g, opts: o, visited: make([]bool, n), res: res}

	run := func(seed int) error {
		if w.visited[seed] {
			return nil
		}

		return w.walkTree(seed)
	}
	for _, s := range sources {
		if err := run(s); err != nil {
			if errors.Is(err, ErrStop) {
				return res, nil
			}

			return nil, err
		}
	}
	if o.FullTraversal {
		for v := 0; v < n; v++ {
			if err := run(v); err != nil {
				if errors.Is(err, ErrStop) {
					return res, nil
				}

				return nil, err
			}
		}
	}

	return res, nil
}

// walkTree explores the DFS tree rooted at root using the frame stack.
// Frame order reproduces exactly what recursion over insertion-order
// adjacency would visit.
func (w *walker) walkTree(root int) error {
	if err := w.discover(root, 0, -1); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		// cancellation check (once per step)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.cursor >= len(top.nbrs) {
			// subtree exhausted: post-order hook, then pop
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(top.id); err != nil {
					return fmt.Errorf("dfs: OnExit hook for %d: %w", top.id, err)
				}
			}
			w.res.Finished = append(w.res.Finished, top.id)
			w.stack = w.stack[:len(w.stack)-1]

			continue
		}

		nbr := top.nbrs[top.cursor]
		top.cursor++

		if w.visited[nbr] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(top.id, nbr) {
			continue
		}
		if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
			continue
		}
		if err := w.discover(nbr, top.depth+1, top.id); err != nil {
			return err
		}
	}

	return nil
}

// discover marks id visited, records bookkeeping, fires the pre-order hook,
// and pushes id's frame with a snapshot of its adjacency row.
func (w *walker) discover(id, depth, parent int) error {
	w.visited[id] = true
	w.res.Depth[id] = depth
	w.res.Parent[id] = parent
	w.res.Order = append(w.res.Order, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			if errors.Is(err, ErrStop) {
				return ErrStop
			}

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	deg, err := w.graph.Degree(id)
	if err != nil {
		return err // unreachable: id came from a validated frontier
	}
	nbrs := make([]int, 0, deg)
	for v := range w.graph.Neighbors(id) {
		nbrs = append(nbrs, v)
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, nbrs: nbrs})

	return nil
}
