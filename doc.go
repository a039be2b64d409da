// Package graphkit is an in-memory toolkit of classic graph algorithms
// over one shared, index-based graph representation.
//
// 🚀 What is graphkit?
//
//	A small, dependency-free library that brings together:
//		• Core primitives: fixed-size, 0-based index graphs built once, read forever
//		• Connectivity: disjoint-set union with path compression & union by rank
//		• Traversals: multi-source BFS and iterative DFS with visitor hooks
//		• Shortest paths: Dijkstra with hop-limited and max-probability variants
//		• Ordering: Kahn topological sort doubling as a cycle detector
//		• Structure: Tarjan low-link bridges & articulation points
//		• Spanning trees: Prim, Kruskal
//		• Grids: 2D-grid adapter for flood distances and island components
//
// ✨ Why choose graphkit?
//
//   - Predictable — insertion-order adjacency, documented tie-break rules
//   - Reusable — engines never mutate your Graph; all run-state is per call
//   - Extensible — visitor hooks (OnVisit, OnEnqueue, OnExit) for custom logic
//   - Pure Go — no cgo, no hidden deps
//
// Package map:
//
//	core/      — Graph type: construction, AddEdge validation, lazy Neighbors
//	dsu/       — standalone disjoint-set union (array-backed, fixed size)
//	bfs/       — breadth-first traversal, multi-source, depth layering
//	dfs/       — depth-first traversal on an explicit stack (no recursion)
//	dijkstra/  — priority-queue relaxation, hop limits, probability maximization
//	toposort/  — Kahn's algorithm; short order ⇒ cycle, never an error
//	bridges/   — bridge edges and articulation points of undirected graphs
//	mst/       — minimum spanning trees (Kruskal via dsu, Prim via heap)
//	gridgraph/ — treat a 2D integer grid as a graph
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	g, _ := core.NewGraph(4)
//	g.AddEdge(0, 1, 1)
//	g.AddEdge(0, 2, 1)
//	g.AddEdge(1, 3, 1)
//	g.AddEdge(2, 3, 1)
//	res, _ := bfs.BFS(g, []int{0})
//	// res.Depth = [0 1 1 2]
package graphkit
