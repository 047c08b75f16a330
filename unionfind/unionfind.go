// Package unionfind implements the disjoint-set structure backing cycle
// detection in Kruskal's algorithm.
package unionfind

import "errors"

// ErrIndexOutOfRange indicates an element index outside [0, Len).
var ErrIndexOutOfRange = errors.New("unionfind: element index out of range")

// DisjointSet tracks a partition of {0, ..., n-1} into disjoint sets using
// path compression and union by rank. The zero value is an empty set over
// zero elements; use New to size one.
type DisjointSet struct {
	parent []int // parent[i] == i marks a set representative (root)
	rank   []int // upper bound on subtree height; meaningful for roots only
	count  int   // number of disjoint sets remaining
}

// New creates a DisjointSet of n singleton sets {0}, {1}, ..., {n-1}.
// Negative n is treated as zero.
// Complexity: O(n).
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of elements the set was created with.
// Complexity: O(1).
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of disjoint sets remaining. It starts at Len()
// and decreases by one for every merging Union.
// Complexity: O(1).
func (d *DisjointSet) Count() int { return d.count }

// Find returns the representative (root) of the set containing x, applying
// full path compression: after the call every vertex on the walked path
// points directly at the root, so repeated lookups amortize toward O(1).
// Returns ErrIndexOutOfRange if x is outside [0, Len).
//
// Implemented as two iterative passes (locate the root, then re-point the
// path) — no recursion, so arbitrarily deep chains cannot exhaust the stack.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Find(x int) (int, error) {
	if x < 0 || x >= len(d.parent) {
		return 0, ErrIndexOutOfRange
	}

	// Pass 1: walk up to the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// Pass 2: compress — point every visited vertex straight at the root.
	for d.parent[x] != root {
		x, d.parent[x] = d.parent[x], root
	}

	return root, nil
}

// Union merges the sets containing x and y using union by rank, and reports
// whether a merge happened (false means x and y were already in the same
// set). Arbitrary elements are accepted; roots are resolved internally via
// Find. Returns ErrIndexOutOfRange if either index is outside [0, Len).
//
// Tie-break is fixed: when both roots have equal rank, y's root attaches
// under x's root and x's root gains one rank. This keeps merge outcomes
// deterministic for a given operation sequence.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Union(x, y int) (bool, error) {
	rootX, err := d.Find(x)
	if err != nil {
		return false, err
	}
	rootY, err := d.Find(y)
	if err != nil {
		return false, err
	}
	if rootX == rootY {
		// Same set already; merging would create no new connectivity.
		return false, nil
	}

	// Attach the shallower tree under the deeper root.
	switch {
	case d.rank[rootX] < d.rank[rootY]:
		d.parent[rootX] = rootY
	case d.rank[rootX] > d.rank[rootY]:
		d.parent[rootY] = rootX
	default:
		// Equal ranks: y's root goes under x's root, x's rank grows.
		d.parent[rootY] = rootX
		d.rank[rootX]++
	}
	d.count--

	return true, nil
}

// Connected reports whether x and y belong to the same set.
// Returns ErrIndexOutOfRange if either index is outside [0, Len).
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Connected(x, y int) (bool, error) {
	rootX, err := d.Find(x)
	if err != nil {
		return false, err
	}
	rootY, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rootX == rootY, nil
}
