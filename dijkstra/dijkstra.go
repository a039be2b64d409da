package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// Dijkstra computes minimum costs from source to every node of g, honoring
// any functional Options. Requires non-negative weights on every edge the
// search actually relaxes; the first negative weight touched aborts with
// ErrNegativeWeight.
//
// Returns the Result (Dist with Inf sentinels, optional Prev), or an error
// for a nil graph or out-of-range source.
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}

	r := &runner{g: g, cfg: cfg, source: source}
	if cfg.HopLimit >= 0 {
		return r.processHops()
	}

	return r.process()
}

// runner holds the state shared by one shortest-path execution.
type runner struct {
	g      *core.Graph
	cfg    Options
	source int

	pq  costPQ
	seq uint64 // monotonic push counter: the documented tie-break
}

// push adds a frontier entry, stamping it with the insertion sequence.
func (r *runner) push(cost int64, node, hops int) {
	r.seq++
	heap.Push(&r.pq, &costItem{cost: cost, node: node, hops: hops, seq: r.seq})
}

// process is the classic single-dimension loop: best[node] is final once the
// node is popped fresh; stale entries are recognized by comparing the popped
// cost against the table.
func (r *runner) process() (*Result, error) {
	n := r.g.NodeCount()
	best := make([]int64, n)
	for i := range best {
		best[i] = Inf
	}
	var prev []int
	if r.cfg.ReturnPath {
		prev = make([]int, n)
		for i := range prev {
			prev[i] = -1
		}
	}

	best[r.source] = 0
	r.pq = make(costPQ, 0, n)
	heap.Init(&r.pq)
	r.push(0, r.source, 0)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*costItem)
		u, d := item.node, item.cost

		// stale-entry check: a cheaper path to u was already finalized
		if d > best[u] {
			continue
		}

		for v, w := range r.g.Neighbors(u) {
			if w < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
			}
			nd := d + w
			if nd > r.cfg.MaxDistance {
				continue
			}
			if nd >= best[v] {
				continue
			}
			best[v] = nd
			if prev != nil {
				prev[v] = u
			}
			r.push(nd, v, 0)
		}
	}

	return &Result{Dist: best, Prev: prev}, nil
}

// processHops runs the hop-limited variant: state is (node, edgesUsed) with
// edgesUsed ≤ HopLimit+1, and the reported distance is the best over all
// admissible hop counts. Prev is not built — a node's optimum may be reached
// at several hop counts.
func (r *runner) processHops() (*Result, error) {
	n := r.g.NodeCount()
	maxEdges := r.cfg.HopLimit + 1

	// bestAt[u][h]: cheapest cost reaching u with exactly h edges
	bestAt := make([][]int64, n)
	for i := range bestAt {
		row := make([]int64, maxEdges+1)
		for h := range row {
			row[h] = Inf
		}
		bestAt[i] = row
	}
	bestAt[r.source][0] = 0

	r.pq = make(costPQ, 0, n)
	heap.Init(&r.pq)
	r.push(0, r.source, 0)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*costItem)
		u, d, h := item.node, item.cost, item.hops

		if d > bestAt[u][h] {
			continue
		}
		if h == maxEdges {
			// edge budget exhausted; entry still contributed to Dist
			continue
		}

		for v, w := range r.g.Neighbors(u) {
			if w < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
			}
			nd := d + w
			if nd > r.cfg.MaxDistance {
				continue
			}
			if nd >= bestAt[v][h+1] {
				continue
			}
			bestAt[v][h+1] = nd
			r.push(nd, v, h+1)
		}
	}

	dist := make([]int64, n)
	for v := range dist {
		dist[v] = Inf
		for _, c := range bestAt[v] {
			if c < dist[v] {
				dist[v] = c
			}
		}
	}

	return &Result{Dist: dist, Prev: nil}, nil
}

// costItem is one frontier entry: cost, node, auxiliary hop count, and the
// insertion sequence used for deterministic tie-breaking.
type costItem struct {
	cost int64
	node int
	hops int
	seq  uint64
}

// costPQ is a min-heap of *costItem ordered by cost ascending, then by
// insertion order. Lazy decrease-key: improved entries are pushed anew and
// outdated ones skipped on pop via the best-cost table.
type costPQ []*costItem

func (pq costPQ) Len() int { return len(pq) }

func (pq costPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq costPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *costPQ) Push(x interface{}) { *pq = append(*pq, x.(*costItem)) }

func (pq *costPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
