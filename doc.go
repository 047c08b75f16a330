// Package spantree computes minimum spanning trees over undirected,
// weighted graphs with integer-indexed vertices.
//
// What is spantree?
//
//	A small, pure-Go library built from three composable pieces:
//		• core      — the Edge and Graph primitives (edge list + vertex count)
//		• unionfind — a disjoint-set with path compression and union by rank
//		• mst       — Kruskal's and Prim's algorithms plus a plain-text reporter
//
// Why spantree?
//
//   - Minimal API — a graph is a vertex count and a list of weighted edges
//   - Explicit failures — out-of-range vertices and disconnected graphs are
//     sentinel errors, never silent partial results
//   - Deterministic — stable weight sort means equal-weight ties resolve in
//     input order, so results are reproducible
//   - Pure Go — no cgo, no hidden deps
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    2───3
//
//	four vertices, five weighted edges; the MST keeps the three cheapest
//	edges that do not close a cycle.
//
// Start with core.NewGraph, add edges, then call mst.Kruskal (or mst.Prim
// with a root). See each subpackage's doc.go for details and complexity.
//
//	go get spantree
package spantree
