// Package dsu implements a fixed-size disjoint-set union (union-find)
// over the elements [0, size). It is independent of core.Graph: callers use
// it standalone for grouping problems, and other graphkit packages (mst,
// gridgraph) use it as their connectivity helper.
//
// Find applies full path compression: every node touched on the way to the
// root is repointed directly at it, so trees flatten as they are queried.
// Union merges by rank. Together the two heuristics give amortized
// near-constant (inverse-Ackermann) time per operation.
//
// Union reports whether it changed anything: false means the two elements
// were already in one set, which callers read as "this edge would close a
// cycle" or "duplicate membership".
//
// A DSU mutates internal arrays on both Find and Union, so a single instance
// must not be shared across concurrent callers without external locking.
//
// Errors:
//
//	ErrBadSize      - negative size passed to New.
//	ErrInvalidIndex - element outside [0, size).
//
// Complexity: Find/Union O(α(n)) amortized; memory O(n).
package dsu
