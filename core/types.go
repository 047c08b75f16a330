// Package core declares the Edge and Graph types, sentinel errors,
// and the NewGraph / NewGraphFromEdges constructors.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrBadOrder indicates a negative vertex count was requested.
	ErrBadOrder = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an edge endpoint or vertex index
	// outside the valid range [0, Order).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")
)

// Edge represents an undirected connection between two vertices.
//
// U and V are vertex indices in [0, Order); (u,v,w) and (v,u,w) denote the
// same edge. Weight is the cost of the edge and may be negative.
type Edge struct {
	// U is one endpoint of the edge.
	U int

	// V is the other endpoint of the edge.
	V int

	// Weight is the cost of the edge.
	Weight int64
}

// Graph is an undirected, weighted graph stored as a vertex count plus an
// edge list. Parallel edges and self-loops are allowed.
//
// A Graph is built by the caller and then read-only for algorithms: Edges()
// returns a copy, so computations never mutate the caller's graph and
// independent computations over one Graph may run concurrently.
type Graph struct {
	order int    // number of vertices; valid indices are [0, order)
	edges []Edge // insertion-ordered edge list
}

// NewGraph creates an empty Graph with order vertices (indices 0..order-1).
// Returns ErrBadOrder if order is negative.
// Complexity: O(1).
func NewGraph(order int) (*Graph, error) {
	if order < 0 {
		return nil, ErrBadOrder
	}

	return &Graph{order: order}, nil
}

// NewGraphFromEdges creates a Graph with order vertices and the given edges.
// Every edge is validated against [0, order); the input slice is copied, so
// the caller retains ownership of it.
// Returns ErrBadOrder or ErrVertexOutOfRange on invalid input.
// Complexity: O(E).
func NewGraphFromEdges(order int, edges []Edge) (*Graph, error) {
	g, err := NewGraph(order)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if addErr := g.AddEdge(e.U, e.V, e.Weight); addErr != nil {
			return nil, addErr
		}
	}

	return g, nil
}
