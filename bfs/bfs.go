package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state for one call.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g from one or more source nodes,
// applying any number of functional Options. Duplicate sources are seeded
// once. Returns ErrGraphNil, ErrNoSources, or ErrSourceNotFound for invalid
// input, ErrOptionViolation for bad options, or any non-ErrStop error
// returned by the OnVisit hook.
func BFS(g *core.Graph, sources []int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate sources
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	for _, s := range sources {
		if !g.HasNode(s) {
			return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, s)
		}
	}

	// Prepare walker
	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	// Seed every source at depth 0; the seeding order is the tie-break
	// among sources.
	for _, s := range sources {
		if !w.visited[s] {
			w.enqueue(s, 0, -1)
		}
	}

	// Main loop; ErrStop is swallowed and the partial result returned.
	if err := w.loop(); err != nil {
		if errors.Is(err, ErrStop) {
			return w.res, nil
		}

		return nil, err
	}

	return w.res, nil
}

// enqueue marks id visited at depth d, records its parent, calls OnEnqueue,
// and appends it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		if errors.Is(err, ErrStop) {
			return ErrStop
		}

		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors walks item's adjacency in insertion order, applying
// filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for nbr := range w.graph.Neighbors(item.id) {
		if w.visited[nbr] {
			continue
		}
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
	}
}
