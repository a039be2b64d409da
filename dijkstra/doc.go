// Package dijkstra implements priority-queue-driven shortest-path
// relaxation on a core.Graph, generalized to carry auxiliary state alongside
// the distance.
//
// Dijkstra computes minimum costs from a single source to every reachable
// node under non-negative edge weights. The loop is the classic
// lazy-decrease-key shape: pop the minimum-cost frontier entry, skip it if a
// cheaper cost for that node was already finalized (stale-entry check
// against the best-cost table), otherwise relax every outgoing edge and push
// improved entries. Unreachable nodes keep the Inf sentinel; callers map
// that to their own "no path" value.
//
// Negative weights are rejected lazily: the first negative weight actually
// touched during relaxation aborts with ErrNegativeWeight. Edges never
// reached by the search are not inspected.
//
// Auxiliary dimension. WithHopLimit(k) keys the search state by
// (node, edgesUsed) instead of node alone, allowing at most k intermediate
// stops (k+1 edges) per path — the "cheapest flight within K stops" problem.
// With a hop limit active the Prev table is not produced, since a node's
// best cost may be reached at several hop counts.
//
// MaxProbability is the multiplicative sibling: it maximizes a product of
// per-edge success probabilities instead of minimizing an additive cost, by
// inverting the heap comparison.
//
// Determinism. Ties are broken by cost ascending, then heap insertion order
// (a monotonic sequence number on every push). When several equal-cost paths
// exist, the one discovered first is reported. This single comparator
// contract applies to every entry point in the package.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — hop-limited runs scale by the k+1 state copies.
//   - Space: O(V + E) under lazy decrease-key.
//
// Options:
//
//   - WithReturnPath()     also build the predecessor table (Prev).
//   - WithHopLimit(k)      allow at most k stops between source and target.
//   - WithMaxDistance(x)   do not explore costs beyond x.
//
// Errors:
//
//   - ErrGraphNil        nil graph.
//   - ErrSourceNotFound  source index outside [0, NodeCount).
//   - ErrNegativeWeight  negative edge weight touched during relaxation.
//   - ErrNilProbFn       MaxProbability called without an edge-probability func.
//   - ErrBadProbability  edge probability outside [0, 1].
package dijkstra
