package mst

import (
	"container/heap"

	"github.com/katalvlaran/graphkit/core"
)

// Prim computes a Minimum Spanning Tree of an undirected weighted graph by
// growing outward from root with a min-heap of frontier edges.
//
// Steps:
//  1. Validate: g != nil, !g.Directed(), root in [0, NodeCount).
//  2. Zero nodes → ErrDisconnected; one node → trivial empty tree.
//  3. Mark root visited and push its incident edges onto the heap.
//  4. Repeatedly pop the cheapest frontier edge; if it reaches a new node,
//     accept it, mark the node, and push that node's incident edges.
//  5. Stop at |V|-1 tree edges; fewer means root's component does not span
//     the graph → ErrDisconnected.
//
// Returns the tree edges in acceptance order, their total weight, and an
// error. Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *core.Graph, root int) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	if g.Directed() {
		return nil, 0, ErrDirected
	}

	n := g.NodeCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if !g.HasNode(root) {
		return nil, 0, ErrRootNotFound
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	visited := make([]bool, n)
	visited[root] = true

	pq := &frontierHeap{}
	var seq uint64
	push := func(from, to int, weight int64) {
		heap.Push(pq, frontierEdge{from: from, to: to, weight: weight, seq: seq})
		seq++
	}
	for v, w := range g.Neighbors(root) {
		if !visited[v] {
			push(root, v, w)
		}
	}

	tree := make([]core.Edge, 0, n-1)
	var totalWeight int64
	for pq.Len() > 0 && len(tree) < n-1 {
		fe := heap.Pop(pq).(frontierEdge)
		if visited[fe.to] {
			// Stale entry; fe.to joined the tree through a cheaper edge.
			continue
		}
		visited[fe.to] = true
		tree = append(tree, core.Edge{From: fe.from, To: fe.to, Weight: fe.weight})
		totalWeight += fe.weight

		for v, w := range g.Neighbors(fe.to) {
			if !visited[v] {
				push(fe.to, v, w)
			}
		}
	}

	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, totalWeight, nil
}

// frontierEdge is a candidate tree edge waiting in the heap. seq records
// push order so equal weights pop in insertion order.
type frontierEdge struct {
	from, to int
	weight   int64
	seq      uint64
}

// frontierHeap is a min-heap of frontierEdge ordered by weight, then seq.
type frontierHeap []frontierEdge

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}

	return h[i].seq < h[j].seq
}

func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x interface{}) { *h = append(*h, x.(frontierEdge)) }

func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	fe := old[n-1]
	*h = old[:n-1]

	return fe
}
