package core

import (
	"fmt"
	"iter"
)

// AddEdge appends the edge u→v with the given weight, mirroring v→u as well
// when the Graph is undirected. Unweighted callers pass weight 1.
// Endpoints are validated immediately: any index outside [0, NodeCount)
// fails with ErrInvalidNode and leaves the Graph unchanged.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight int64) error {
	if u < 0 || u >= len(g.adj) {
		return fmt.Errorf("%w: u=%d, nodeCount=%d", ErrInvalidNode, u, len(g.adj))
	}
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: v=%d, nodeCount=%d", ErrInvalidNode, v, len(g.adj))
	}

	g.adj[u] = append(g.adj[u], halfEdge{to: v, weight: weight})
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], halfEdge{to: u, weight: weight})
	}
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: weight})

	return nil
}

// Neighbors returns a lazy, restartable sequence of (neighbor, weight) pairs
// for node u, in insertion order. Ranging over it allocates nothing.
// An out-of-range u yields an empty sequence; every stored entry is already
// validated, so callers inside a traversal never need to re-check bounds.
func (g *Graph) Neighbors(u int) iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		if u < 0 || u >= len(g.adj) {
			return
		}
		for _, he := range g.adj[u] {
			if !yield(he.to, he.weight) {
				return
			}
		}
	}
}

// NodeCount reports the number of nodes fixed at construction.
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount reports the number of AddEdge calls recorded
// (an undirected edge counts once).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Directed reports whether the Graph was built directed.
func (g *Graph) Directed() bool { return g.directed }

// HasNode reports whether u is a valid node index.
func (g *Graph) HasNode(u int) bool { return u >= 0 && u < len(g.adj) }

// Degree returns the number of adjacency entries for u (for undirected
// graphs this includes mirrored entries). Returns ErrInvalidNode for an
// out-of-range index.
func (g *Graph) Degree(u int) (int, error) {
	if !g.HasNode(u) {
		return 0, fmt.Errorf("%w: u=%d, nodeCount=%d", ErrInvalidNode, u, len(g.adj))
	}

	return len(g.adj[u]), nil
}

// Edges returns a copy of every edge in insertion order, one entry per
// AddEdge call regardless of directedness. Kruskal and the bridge engine's
// cross-checks iterate this list.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
