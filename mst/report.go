// Plain-text rendering of an MST result. Reporting is deliberately separate
// from computation: Kruskal and Prim return values, this collaborator
// formats them, so the algorithms are testable without capturing output.
package mst

import (
	"fmt"
	"io"

	"spantree/core"
)

// WriteResult renders an MST result as human-readable text:
//
//	Edges in the constructed MST:
//	2 -- 3: weight == 4
//	0 -- 3: weight == 5
//	0 -- 1: weight == 10
//	Minimum spanning tree's total weight: 19
//
// Edges are listed in the order given (for Kruskal and Prim, selection
// order). Returns the first write error encountered, if any.
// Complexity: O(E).
func WriteResult(w io.Writer, edges []core.Edge, total int64) error {
	if _, err := fmt.Fprintln(w, "Edges in the constructed MST:"); err != nil {
		return err
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "%d -- %d: weight == %d\n", e.U, e.V, e.Weight); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Minimum spanning tree's total weight: %d\n", total)

	return err
}
