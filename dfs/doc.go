// Package dfs implements depth-first search over a core.Graph with an
// explicit frame stack: no recursion, so behavior stays defined on graphs
// deep enough to overflow a native call stack.
//
// DFS accepts one or more source nodes and explores each unvisited source's
// tree in turn; WithFullTraversal extends the sweep to every remaining
// unvisited node, covering disconnected components. Each reachable node is
// visited exactly once, in the same order a recursive implementation would
// produce (adjacency insertion order).
//
// Hooks mirror the recursion structure: OnVisit fires pre-order when a node
// is discovered, OnExit fires post-order after its subtree is exhausted.
// OnVisit may return ErrStop to halt the walk cooperatively — the partial
// Result is returned with nil error. Any other hook error aborts.
//
// Complexity:
//
//   - Time:   O(V + E) plus hook overhead.
//   - Memory: O(V + E) worst case for the frame stack and captured adjacency.
//
// Options:
//
//   - WithContext(ctx)        cancellation via context.Context.
//   - WithOnVisit(fn)         pre-order hook; ErrStop halts cleanly.
//   - WithOnExit(fn)          post-order hook.
//   - WithMaxDepth(limit)     do not descend beyond limit (-1 = no limit).
//   - WithFilterNeighbor(fn)  skip edges curr→neighbor when fn returns false.
//   - WithFullTraversal()     continue from every unvisited node.
//
// Errors:
//
//   - ErrGraphNil        nil graph.
//   - ErrNoSources       empty source list without WithFullTraversal.
//   - ErrSourceNotFound  a source index outside [0, NodeCount).
package dfs
