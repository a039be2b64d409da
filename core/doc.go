// Package core provides the fixed-size, index-based Graph shared by every
// algorithm package in graphkit.
//
// A Graph is created with its node count up front; nodes are the integers
// [0, NodeCount). Edges are appended with AddEdge and validated immediately,
// so no later algorithm call can ever encounter a dangling endpoint. After
// construction the Graph is read-only by convention: there is no removal or
// mutation API, and every engine allocates its own per-run state instead of
// touching the Graph. A single Graph may therefore be read by any number of
// concurrent algorithm calls.
//
// Adjacency is kept strictly in insertion order. Problems that need a
// deterministic lexical tie-break (e.g. reconstructing the smallest itinerary)
// get it by adding edges pre-sorted; nothing in this package reorders them.
// Parallel edges and self-loops are stored exactly as supplied.
//
// Undirected graphs mirror every AddEdge(u, v, w) into both u→v and v→w
// adjacency rows. The duplication is intentional: traversal and shortest-path
// code only ever walks forward adjacency.
//
// Errors:
//
//	ErrBadNodeCount - negative node count passed to NewGraph.
//	ErrInvalidNode  - edge endpoint outside [0, NodeCount).
//
// Complexity: AddEdge O(1) amortized; Neighbors iteration O(deg(u));
// memory O(V + E).
package core
