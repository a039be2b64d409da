package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// MaxProbability computes, for every node, the maximum product of per-edge
// success probabilities over all paths from source. prob converts a stored
// edge weight into a probability in [0, 1]; a value outside that range
// aborts with ErrBadProbability (checked lazily, like negative weights in
// Dijkstra).
//
// The relaxation is Dijkstra with the comparison inverted: a max-heap on
// probability, finalizing the most likely node first. That is sound because
// multiplying by factors ≤ 1 can never increase a product, mirroring how
// adding non-negative weights can never decrease a sum.
//
// The result holds 1 for the source, 0 for unreachable nodes.
func MaxProbability(g *core.Graph, source int, prob func(weight int64) float64) ([]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if prob == nil {
		return nil, ErrNilProbFn
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}

	n := g.NodeCount()
	best := make([]float64, n) // zero value doubles as "unreachable"
	best[source] = 1

	pq := make(probPQ, 0, n)
	heap.Init(&pq)
	var seq uint64
	push := func(p float64, node int) {
		seq++
		heap.Push(&pq, &probItem{prob: p, node: node, seq: seq})
	}
	push(1, source)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*probItem)
		u, p := item.node, item.prob

		// stale-entry check, mirrored for maximization
		if p < best[u] {
			continue
		}

		for v, w := range g.Neighbors(u) {
			pe := prob(w)
			if pe < 0 || pe > 1 {
				return nil, fmt.Errorf("%w: edge %d→%d prob=%v", ErrBadProbability, u, v, pe)
			}
			np := p * pe
			if np <= best[v] {
				continue
			}
			best[v] = np
			push(np, v)
		}
	}

	return best, nil
}

// probItem is one frontier entry for the multiplicative variant.
type probItem struct {
	prob float64
	node int
	seq  uint64
}

// probPQ is a max-heap on probability; ties fall back to insertion order,
// the same contract as costPQ.
type probPQ []*probItem

func (pq probPQ) Len() int { return len(pq) }

func (pq probPQ) Less(i, j int) bool {
	if pq[i].prob != pq[j].prob {
		return pq[i].prob > pq[j].prob
	}

	return pq[i].seq < pq[j].seq
}

func (pq probPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *probPQ) Push(x interface{}) { *pq = append(*pq, x.(*probItem)) }

func (pq *probPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
