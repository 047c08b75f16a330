// Kruskal's Minimum Spanning Tree algorithm over an undirected, weighted
// *core.Graph, producing the selected edges and their total weight.
package mst

import (
	"sort"

	"spantree/core"
	"spantree/unionfind"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected,
// weighted graph using a disjoint-set (union-find) structure with path
// compression and union by rank for cycle detection.
//
// Error Conditions:
//   - ErrNilGraph              : if g is nil.
//   - core.ErrVertexOutOfRange : if any edge endpoint is outside [0, Order).
//   - ErrDisconnected          : if |V| > 1 but the graph is not fully connected.
//
// Steps:
//  1. Validate: g != nil.
//  2. If |V| ≤ 1 the MST is trivially empty (no edges, weight 0) — an empty
//     graph is a degenerate valid input, not a disconnected one.
//  3. Copy the edge list (the caller's graph is never mutated), re-check
//     every endpoint against [0, |V|) before any parent/rank indexing, and
//     drop self-loops (u == v) — they always close a cycle.
//  4. Stable-sort edges by ascending weight; equal weights keep input order.
//  5. Initialize a fresh unionfind.New(|V|), exclusively owned by this call.
//  6. Scan sorted edges: for each (u,v), if find(u) != find(v), union the
//     two sets and accept the edge; otherwise discard it.
//  7. Break once |V|-1 edges are accepted. If the scan ends short of |V|-1,
//     the graph was disconnected → ErrDisconnected, never a partial tree.
//
// The returned edges are in selection order and the total always equals the
// sum of their weights.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(g *core.Graph) ([]core.Edge, int64, error) {
	// 1. Validate the graph pointer.
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	// 2. Degenerate orders: zero or one vertex spans itself.
	order := g.Order()
	if order <= 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Work on a private copy of the edge list; validate endpoints before
	//    sorting or any disjoint-set indexing, and drop self-loops.
	allEdges := g.Edges()
	edges := make([]core.Edge, 0, len(allEdges))
	for _, e := range allEdges {
		if e.U < 0 || e.U >= order || e.V < 0 || e.V >= order {
			return nil, 0, core.ErrVertexOutOfRange
		}
		if e.U == e.V {
			// Self-loops can never be part of a spanning tree.
			continue
		}
		edges = append(edges, e)
	}

	// 4. Stable sort by ascending weight: ties resolve in input order, so
	//    the selected tree is deterministic.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 5. Fresh disjoint-set, scoped to this computation.
	ds := unionfind.New(order)

	// 6. Greedy scan: accept every lightest edge that joins two components.
	mst := make([]core.Edge, 0, order-1)
	var totalWeight int64
	for _, e := range edges {
		x, err := ds.Find(e.U)
		if err != nil {
			return nil, 0, err
		}
		y, err := ds.Find(e.V)
		if err != nil {
			return nil, 0, err
		}
		if x == y {
			// Endpoints already connected; this edge would close a cycle.
			continue
		}
		if _, err = ds.Union(x, y); err != nil {
			return nil, 0, err
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		// 7. |V|-1 accepted edges span the graph; the rest can be skipped.
		if len(mst) == order-1 {
			break
		}
	}

	if len(mst) < order-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
