// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a set of source nodes.
// Multi-source seeding is first-class: every source enters the frontier at
// depth 0, so flooding outward from many cells at once (e.g. nearest-land
// distance for every water cell) is a single call. For an unweighted graph
// the reported depth of a node is exactly its minimum edge count from the
// nearest source, which "minimum steps" problems rely on.
//
// Each reachable node is visited exactly once; edge weights are ignored.
// The OnVisit hook may return ErrStop to halt the walk cooperatively: the
// partial Result built so far is returned with a nil error. Any other hook
// error aborts the walk and is returned. There is no timeout mechanism; a
// caller wanting a time bound checks the clock inside its hook and returns
// ErrStop.
//
// Complexity:
//
//   - Time:   O(V + E), plus hook overhead.
//   - Memory: O(V) for the queue, visited array, and Result.
//
// Options:
//
//   - WithContext(ctx)        cancellation via context.Context.
//   - WithOnVisit(fn)         hook per visited node; ErrStop halts cleanly.
//   - WithOnEnqueue(fn)       hook when a node enters the frontier.
//   - WithMaxDepth(d)         do not explore beyond depth d (0 = no limit).
//   - WithFilterNeighbor(fn)  skip edges curr→neighbor when fn returns false.
//
// Errors:
//
//   - ErrGraphNil         nil graph.
//   - ErrNoSources        empty source list.
//   - ErrSourceNotFound   a source index outside [0, NodeCount).
//   - ErrOptionViolation  invalid option value (e.g. negative MaxDepth).
package bfs
