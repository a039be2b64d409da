package mst

import (
	"sort"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dsu"
)

// Kruskal computes a Minimum Spanning Tree of an undirected weighted graph.
//
// Steps:
//  1. Validate: g != nil and !g.Directed().
//  2. Zero nodes → ErrDisconnected; one node → trivial empty tree.
//  3. Collect g.Edges(), dropping self-loops.
//  4. Stable-sort by ascending weight (ties keep insertion order).
//  5. Sweep the sorted edges, joining components through a disjoint-set
//     union; an edge whose endpoints already share a component is skipped.
//  6. Stop at |V|-1 tree edges; fewer means the graph is disconnected.
//
// Returns the tree edges in acceptance order, their total weight, and an
// error. Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(g *core.Graph) ([]core.Edge, int64, error) {
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
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// Self-loops cannot join two components; drop them before sorting.
	all := g.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// Stable sort so equal weights resolve to the earlier-inserted edge.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	forest, err := dsu.New(n)
	if err != nil {
		return nil, 0, err
	}

	tree := make([]core.Edge, 0, n-1)
	var totalWeight int64
	for _, e := range edges {
		// Endpoints come from g.Edges(), so Union cannot fail on bounds.
		joined, uerr := forest.Union(e.From, e.To)
		if uerr != nil {
			return nil, 0, uerr
		}
		if !joined {
			continue
		}
		tree = append(tree, e)
		totalWeight += e.Weight
		if len(tree) == n-1 {
			break
		}
	}

	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, totalWeight, nil
}
