// Package core defines the graph primitives shared by the spantree
// algorithms: Edge and Graph.
//
// What & Why
//
//   - Vertices are plain integer indices in the range [0, Order).
//     There is no vertex type: identity is the index, and algorithms use it
//     directly to address parent/rank slices and adjacency structures.
//
//   - An Edge is an undirected triple (U, V, Weight). (u,v,w) and (v,u,w)
//     describe the same connection. Weights are signed int64 values;
//     negative weights are permitted (MST correctness does not require
//     non-negative weights). Parallel edges and self-loops may be stored —
//     it is up to each algorithm to skip or exploit them.
//
//   - A Graph is a vertex count plus an append-only edge list. It is built
//     once by the caller and then treated as read-only by every algorithm:
//     Edges() hands out a fresh copy, so no algorithm can disturb the
//     caller's graph, and separate computations over the same Graph are safe
//     to run concurrently.
//
// Construction
//
//	g, err := core.NewGraph(4)          // 4 vertices: 0,1,2,3
//	err = g.AddEdge(0, 1, 10)           // undirected, weight 10
//	g, err := core.NewGraphFromEdges(4, edges) // bulk form
//
// Every mutation validates its vertex indices up front: an endpoint outside
// [0, Order) is rejected with ErrVertexOutOfRange before anything is stored,
// so a successfully built Graph never contains a dangling index and
// algorithms never risk out-of-bounds slice access.
//
// Errors (sentinel):
//
//	– ErrBadOrder         if a negative vertex count is requested.
//	– ErrVertexOutOfRange if an edge endpoint is outside [0, Order).
//
// Complexity: AddEdge is O(1) amortized; Edges() is O(E) (defensive copy).
package core
