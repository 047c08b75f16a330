// Package unionfind provides a disjoint-set (union-find) data structure
// over integer elements 0..n-1, with path compression and union by rank.
//
// What & Why
//
//   - A DisjointSet maintains a partition of {0, ..., n-1} into disjoint
//     sets. Two queries drive everything: "which set is x in?" (Find) and
//     "merge the sets of x and y" (Union). Kruskal's algorithm uses exactly
//     these to detect whether a candidate edge would close a cycle.
//
//   - Representation: two parallel slices. parent[i] points toward i's set
//     representative (parent[i] == i marks a root); rank[i] is an upper
//     bound on the height of the tree rooted at i, maintained only for
//     roots.
//
//   - Find performs full path compression iteratively: it first walks to
//     the root, then re-points every vertex on the traversed path directly
//     at that root. The iterative two-pass form avoids unbounded recursion
//     on degenerate chains while compressing just as aggressively as the
//     classic recursive formulation.
//
//   - Union merges by rank: the shallower tree's root attaches under the
//     deeper one. On equal ranks the tie-break is fixed — y's root attaches
//     under x's root and x's rank grows by one — so merge outcomes are
//     deterministic and testable.
//
// With both heuristics, any sequence of m operations over n elements runs
// in O(m α(n)) time, α being the inverse Ackermann function — effectively
// constant per operation. Space is O(n).
//
// Every exported operation validates its indices and returns
// ErrIndexOutOfRange rather than panicking on bad input: the structure is
// typically sized from a caller-controlled graph, and a malformed edge must
// surface as an error, not a crash.
//
// A DisjointSet is not safe for concurrent mutation; create one per
// computation and keep it exclusively owned (this is how the mst package
// uses it).
package unionfind
