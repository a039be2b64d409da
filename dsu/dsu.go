package dsu

import (
	"errors"
	"fmt"
)

// Sentinel errors for dsu operations.
var (
	// ErrBadSize indicates a negative size was passed to New.
	ErrBadSize = errors.New("dsu: size must be non-negative")

	// ErrInvalidIndex indicates an element outside [0, size).
	ErrInvalidIndex = errors.New("dsu: element index out of range")
)

// DSU is a disjoint-set union over the elements [0, size).
//
// parent[i] == i marks i as the root of its set. rank bounds tree height for
// the union-by-rank heuristic; size (tracked per root) reports set sizes.
type DSU struct {
	parent []int
	rank   []int
	size   []int
	count  int // number of disjoint sets remaining
}

// New creates a DSU of size elements, each initially in its own set.
// Returns ErrBadSize if size is negative.
// Complexity: O(n).
func New(size int) (*DSU, error) {
	if size < 0 {
		return nil, ErrBadSize
	}
	d := &DSU{
		parent: make([]int, size),
		rank:   make([]int, size),
		size:   make([]int, size),
		count:  size,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d, nil
}

// Len reports the number of elements the DSU was created with.
func (d *DSU) Len() int { return len(d.parent) }

// Count reports the number of disjoint sets remaining.
func (d *DSU) Count() int { return d.count }

// Find returns the representative (root) of x's set, compressing the path so
// every visited element points directly at the root afterwards.
// Returns ErrInvalidIndex for an out-of-range element.
func (d *DSU) Find(x int) (int, error) {
	if x < 0 || x >= len(d.parent) {
		return 0, fmt.Errorf("%w: x=%d, size=%d", ErrInvalidIndex, x, len(d.parent))
	}

	return d.find(x), nil
}

// find walks to the root, then repoints the whole path at it.
// Iterative on purpose: no recursion depth to worry about.
func (d *DSU) find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}

	return root
}

// Union merges the sets containing x and y, attaching the lower-rank root
// under the higher. Returns false (with nil error) when x and y were already
// in the same set, which signals "cycle" or "duplicate membership" to the
// caller, and true when a merge happened.
// Returns ErrInvalidIndex for an out-of-range element.
func (d *DSU) Union(x, y int) (bool, error) {
	if x < 0 || x >= len(d.parent) {
		return false, fmt.Errorf("%w: x=%d, size=%d", ErrInvalidIndex, x, len(d.parent))
	}
	if y < 0 || y >= len(d.parent) {
		return false, fmt.Errorf("%w: y=%d, size=%d", ErrInvalidIndex, y, len(d.parent))
	}

	rx, ry := d.find(x), d.find(y)
	if rx == ry {
		return false, nil
	}
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
	d.count--

	return true, nil
}

// Connected reports whether x and y are in the same set.
// Returns ErrInvalidIndex for an out-of-range element.
func (d *DSU) Connected(x, y int) (bool, error) {
	if x < 0 || x >= len(d.parent) {
		return false, fmt.Errorf("%w: x=%d, size=%d", ErrInvalidIndex, x, len(d.parent))
	}
	if y < 0 || y >= len(d.parent) {
		return false, fmt.Errorf("%w: y=%d, size=%d", ErrInvalidIndex, y, len(d.parent))
	}

	return d.find(x) == d.find(y), nil
}

// SizeOf returns the size of the set containing x.
// Returns ErrInvalidIndex for an out-of-range element.
func (d *DSU) SizeOf(x int) (int, error) {
	if x < 0 || x >= len(d.parent) {
		return 0, fmt.Errorf("%w: x=%d, size=%d", ErrInvalidIndex, x, len(d.parent))
	}

	return d.size[d.find(x)], nil
}
