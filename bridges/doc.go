// Package bridges finds the bridges and articulation points of an
// undirected core.Graph with Tarjan's low-link DFS.
//
// One sweep assigns every node a discovery time on first visit and computes
//
//	low[u] = min(disc[u],
//	             min over tree-children v of low[v],
//	             min over back-edges to an ancestor a of disc[a])
//
// A tree edge (u, v) is a bridge iff low[v] > disc[u]: nothing in v's
// subtree reaches above u, so removing the edge disconnects the subtree.
// A non-root u is an articulation point iff some tree child v has
// low[v] >= disc[u]; a root is one iff it has two or more tree children.
//
// The edge to one's own DFS parent is excluded from back-edge consideration
// exactly once, by occurrence rather than by endpoint: a parallel edge
// between the same endpoints therefore still counts as a back-edge and
// correctly cancels bridge status. Self-loops never affect the result.
//
// Disconnected graphs are handled by rooting a fresh DFS at every unvisited
// node. The traversal runs on an explicit frame stack, so graphs deep
// enough to overflow a native call stack stay safe. Output order is not
// significant.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for discovery/low arrays and the frame stack.
//
// Errors:
//
//   - ErrGraphNil  nil graph.
//   - ErrDirected  bridges are defined for undirected graphs only.
package bridges
