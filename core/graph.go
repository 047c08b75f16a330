package core

// AddEdge appends the undirected edge (u, v, weight) to the graph.
// Self-loops (u == v) and parallel edges are accepted; algorithms decide
// how to treat them. Returns ErrVertexOutOfRange if either endpoint is
// outside [0, Order) — nothing is stored on failure.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight int64) error {
	if u < 0 || u >= g.order || v < 0 || v >= g.order {
		return ErrVertexOutOfRange
	}
	g.edges = append(g.edges, Edge{U: u, V: v, Weight: weight})

	return nil
}

// Order returns the number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) Order() int { return g.order }

// Size returns the number of edges in the graph, counting parallel edges
// and self-loops.
// Complexity: O(1).
func (g *Graph) Size() int { return len(g.edges) }

// Edges returns a copy of the edge list in insertion order.
// The copy keeps the caller's graph immutable while algorithms sort or
// filter the returned slice freely.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
