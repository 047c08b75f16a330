// Package mst defines configuration options and sentinel errors for MST
// computation. It supports selecting between Kruskal and Prim via Options.
package mst

import (
	"errors"

	"spantree/core"
)

// ErrNilGraph indicates a nil *core.Graph was passed to an MST algorithm.
var ErrNilGraph = errors.New("mst: graph is nil")

// ErrDisconnected indicates that the graph is not fully connected, so a
// spanning tree covering all vertices cannot be formed. It applies only
// when |V| > 1; empty and single-vertex graphs have a trivial empty MST.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// ErrUnknownMethod indicates that Options.Method names no known algorithm.
var ErrUnknownMethod = errors.New("mst: unknown method")

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// Options configures which MST algorithm Compute runs, and for Prim, which
// starting vertex to use. Use DefaultOptions() for the default setup
// (Kruskal).
//
// Fields:
//
//	Method string — one of MethodKruskal or MethodPrim.
//	Root   int    — start vertex for Prim; ignored when Method == MethodKruskal.
//
// See: mst.Kruskal, mst.Prim
// Complexity: O(E log E + α(V)·E) for Kruskal, O(E log V) for Prim.
type Options struct {
	// Method to use: MethodKruskal or MethodPrim.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodKruskal, MethodPrim.
func WithMethod(m string) Option {
	return func(opts *Options) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's
// algorithm; ignored by Kruskal.
func WithRoot(root int) Option {
	return func(opts *Options) {
		opts.Root = root
	}
}

// DefaultOptions returns Options initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = 0 (ignored by Kruskal).
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal(g).
//	– If opts.Method == MethodPrim:    calls Prim(g, opts.Root).
//	– Otherwise:                       returns ErrUnknownMethod.
//
// Returns:
//
//	[]core.Edge — edges of the MST in selection order (empty for |V| ≤ 1).
//	int64       — total weight of the MST (zero if no edges).
//	error       — non-nil if computation cannot proceed.
//
// Note: this is optional scaffolding — Kruskal and Prim can be called
// directly.
func Compute(g *core.Graph, opts Options) ([]core.Edge, int64, error) {
	// Dispatch by method name.
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, opts.Root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}
