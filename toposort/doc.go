// Package toposort computes a topological ordering of a directed
// core.Graph with Kahn's algorithm, doubling as a cycle detector.
//
// Sort counts in-degrees, seeds a FIFO queue with every zero-in-degree
// node, then repeatedly dequeues a node, appends it to the order, and
// decrements its successors' in-degrees, enqueuing any that reach zero.
//
// A cyclic input is a normal outcome, not an error: nodes on or behind a
// cycle never reach in-degree zero, so the returned order is simply shorter
// than NodeCount. Result.Complete reports whether the graph was acyclic.
// Consumers like dependency schedulers routinely need "no valid ordering
// exists" as expected business logic, which is why nothing is thrown here.
//
// Tie-break: among several ready (zero-in-degree) nodes, queue insertion
// order wins. Callers control it two ways: WithSeedOrder fixes the order in
// which the initial zero-in-degree scan runs, and adjacency insertion order
// governs which successors become ready first. Recovering a specific
// dictionary/alphabet ordering is done exactly through these controls.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the in-degree array and queue.
//
// Errors:
//
//   - ErrGraphNil     nil graph.
//   - ErrUndirected   topological order is meaningless for undirected graphs.
//   - ErrBadSeedOrder seed order is not a permutation of [0, NodeCount).
package toposort
