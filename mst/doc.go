// Package mst computes Minimum Spanning Trees of undirected weighted graphs
// built with core.Graph. Two classic strategies are provided:
//
//   - Kruskal(g) — sort every edge by weight, then sweep from lightest to
//     heaviest, joining components with a disjoint-set union (the dsu
//     package). An edge whose endpoints are already connected is skipped.
//     Time O(E log E + α(V)·E), memory O(V + E).
//
//   - Prim(g, root) — grow a single tree outward from root using a min-heap
//     of frontier edges, always attaching the cheapest edge that reaches a
//     new node. Time O(E log V), memory O(V + E).
//
// Both return the tree edges, the total weight, and an error. A graph that
// cannot be spanned (zero nodes, or more than one component) yields
// ErrDisconnected. Directed graphs are rejected with ErrDirected.
//
// Determinism: core.Graph.Edges() preserves insertion order and Kruskal uses
// a stable sort, so equal-weight ties resolve to the earlier-inserted edge.
// Prim breaks heap ties by push sequence for the same effect.
//
// Self-loops can never join two components and are filtered out up front.
// Parallel edges are handled naturally: only the first one to connect its
// endpoints is taken.
//
// Pick Prim for sparse graphs with a natural starting hub; pick Kruskal when
// a single global pass over all edges is simpler to reason about.
package mst
