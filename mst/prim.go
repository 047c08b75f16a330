// Prim's Minimum Spanning Tree algorithm over an undirected, weighted
// *core.Graph, growing the tree from a chosen root via a min-heap.
package mst

import (
	"container/heap"

	"spantree/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted
// graph by growing outward from root using a min-heap of candidate edges.
//
// Error Conditions:
//   - ErrNilGraph              : if g is nil.
//   - core.ErrVertexOutOfRange : if root or any edge endpoint is outside [0, Order).
//   - ErrDisconnected          : if |V| > 1 but the graph is not fully connected.
//
// Steps:
//  1. Validate: g != nil. An empty graph has a trivially empty MST.
//  2. Validate root against [0, |V|); a single-vertex graph returns an
//     empty MST once the root checks out.
//  3. Build an adjacency view from the edge list (endpoints re-checked,
//     self-loops dropped).
//  4. Mark root visited and push its incident edges onto a min-heap.
//  5. While the heap is non-empty and the MST has < |V|-1 edges: pop the
//     lightest candidate; skip it if its far endpoint is already visited
//     (cycle); otherwise accept it, mark the endpoint, and push that
//     vertex's incident edges.
//  6. Fewer than |V|-1 accepted edges after the loop → ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *core.Graph, root int) ([]core.Edge, int64, error) {
	// 1. Validate the graph pointer.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	order := g.Order()
	if order == 0 {
		return []core.Edge{}, 0, nil
	}

	// 2. Root must name an existing vertex.
	if root < 0 || root >= order {
		return nil, 0, core.ErrVertexOutOfRange
	}
	if order == 1 {
		return []core.Edge{}, 0, nil
	}

	// 3. Adjacency view: each undirected edge is reachable from both ends.
	adj := make([][]halfEdge, order)
	for _, e := range g.Edges() {
		if e.U < 0 || e.U >= order || e.V < 0 || e.V >= order {
			return nil, 0, core.ErrVertexOutOfRange
		}
		if e.U == e.V {
			continue
		}
		adj[e.U] = append(adj[e.U], halfEdge{to: e.V, weight: e.Weight})
		adj[e.V] = append(adj[e.V], halfEdge{to: e.U, weight: e.Weight})
	}

	// 4. Seed the frontier with the root's incident edges.
	visited := make([]bool, order)
	visited[root] = true
	pq := &edgePQ{}
	heap.Init(pq)
	for _, he := range adj[root] {
		heap.Push(pq, candidate{from: root, halfEdge: he})
	}

	mst := make([]core.Edge, 0, order-1)
	var totalWeight int64

	// 5. Expand by the lightest candidate that reaches a new vertex.
	for pq.Len() > 0 && len(mst) < order-1 {
		c := heap.Pop(pq).(candidate)
		if visited[c.to] {
			// Far endpoint already in the tree; this edge would form a cycle.
			continue
		}
		visited[c.to] = true
		mst = append(mst, core.Edge{U: c.from, V: c.to, Weight: c.weight})
		totalWeight += c.weight

		for _, he := range adj[c.to] {
			if !visited[he.to] {
				heap.Push(pq, candidate{from: c.to, halfEdge: he})
			}
		}
	}

	// 6. A short tree means some vertex was unreachable from root.
	if len(mst) < order-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// halfEdge is one direction of an undirected edge in the adjacency view.
type halfEdge struct {
	to     int
	weight int64
}

// candidate is a frontier edge from an in-tree vertex to a (possibly)
// outside vertex, ordered by weight on the heap.
type candidate struct {
	from int
	halfEdge
}

// edgePQ implements heap.Interface for a min-heap of candidates, ordered by
// weight.
type edgePQ []candidate

// Len returns the number of candidates in the priority queue.
// Complexity: O(1).
func (pq edgePQ) Len() int { return len(pq) }

// Less reports whether element i sorts before j (ascending weight).
// Complexity: O(1).
func (pq edgePQ) Less(i, j int) bool { return pq[i].weight < pq[j].weight }

// Swap swaps elements at indices i and j.
// Complexity: O(1).
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new candidate to the heap.
// Called by heap.Push. Complexity: O(log N) amortized.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last candidate after heap adjustments.
// Called by heap.Pop. Complexity: O(log N) amortized.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
