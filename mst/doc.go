// Package mst provides two algorithms for computing the Minimum Spanning
// Tree (MST) of an undirected, weighted *core.Graph: Kruskal's algorithm
// and Prim's algorithm, plus a plain-text reporter for their results.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a
//     subset T ⊆ E that connects all vertices in V with no cycles and
//     minimizes the total edge weight. A spanning tree over V vertices has
//     exactly |V|−1 edges.
//
//   - Why MST matters: cost-efficient network design (cabling, pipelines),
//     clustering (cut the heaviest tree edges), and as a subroutine in
//     approximation algorithms (Steiner trees, TSP heuristics).
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, int64, error)
//
//   - Strategy: stable-sort all edges by ascending weight, then scan from
//     lightest to heaviest. A unionfind.DisjointSet tracks which vertices
//     are already connected; an edge whose endpoints share a representative
//     would close a cycle and is discarded, every other edge is accepted.
//     The scan stops as soon as |V|−1 edges have been accepted.
//
//   - Complexity: O(E log E + α(V)·E) ≈ O(E log V) time (sorting dominates;
//     α is the inverse Ackermann function), O(V + E) space.
//
//   - Determinism: the sort is stable, so equal-weight edges are considered
//     in input order and the selected tree is reproducible run over run.
//
//   - Prim(g *core.Graph, root int) ([]core.Edge, int64, error)
//
//   - Strategy: grow a single tree outward from root. A min-heap holds
//     candidate edges from the tree to outside vertices; each step extracts
//     the lightest candidate that reaches a new vertex, until |V|−1 edges
//     have been added.
//
//   - Complexity: O(E log V) time, O(V + E) space.
//
//   - Use-case: sparse graphs, or when a natural starting vertex exists and
//     sorting the whole edge list upfront is undesirable.
//
// Error Conditions
//
//	Both algorithms return sentinel errors for invalid inputs and
//	unreachable-MST scenarios:
//
//	- ErrNilGraph
//	    - the graph pointer is nil.
//
//	- core.ErrVertexOutOfRange
//	    - an edge endpoint lies outside [0, Order) (checked before sorting,
//	      ahead of any parent/rank indexing), or Prim's root is out of range.
//
//	- ErrDisconnected
//	    - |V| > 1 and the edges are exhausted before |V|−1 were accepted:
//	      no spanning tree exists. Never returned for |V| ≤ 1 — an empty or
//	      single-vertex graph has a trivial empty MST with weight 0.
//
//	- ErrUnknownMethod (Compute only)
//	    - Options.Method is neither MethodKruskal nor MethodPrim.
//
// Result shape: the accepted edges in selection order plus the total weight,
// which always equals the sum of the returned edges' weights. Computation is
// pure — rendering is a separate concern, see WriteResult for the
// human-readable form ("Edges in the constructed MST:" followed by one
// "u -- v: weight == w" line per edge and a total line).
//
// Each invocation owns a fresh DisjointSet and sorts a private copy of the
// edge list, so independent computations — even over the same Graph — can
// run concurrently.
package mst
