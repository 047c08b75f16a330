package mst_test

import (
	"fmt"
	"os"

	"spantree/core"
	"spantree/mst"
)

// ExampleKruskal demonstrates Kruskal's algorithm on the classic 4-vertex
// graph and renders the result with WriteResult.
func ExampleKruskal() {
	// 1. Construct a graph with 4 vertices.
	g, _ := core.NewGraph(4)
	// 2. Add the weighted edges.
	g.AddEdge(0, 1, 10)
	g.AddEdge(0, 2, 6)
	g.AddEdge(0, 3, 5)
	g.AddEdge(1, 3, 15)
	g.AddEdge(2, 3, 4)

	// 3. Run Kruskal's algorithm.
	edges, total, err := mst.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4. Render the MST as text.
	mst.WriteResult(os.Stdout, edges, total)
	// Output:
	// Edges in the constructed MST:
	// 2 -- 3: weight == 4
	// 0 -- 3: weight == 5
	// 0 -- 1: weight == 10
	// Minimum spanning tree's total weight: 19
}

// ExamplePrim demonstrates Prim's algorithm on a 5-vertex pentagon,
// growing from vertex 0. The heavy 0—4 edge is the one left out.
func ExamplePrim() {
	// Pentagon: 0—1(1), 1—2(2), 2—3(3), 3—4(5), 0—4(12).
	g, _ := core.NewGraph(5)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 4, 12)
	g.AddEdge(1, 2, 2)
	g.AddEdge(2, 3, 3)
	g.AddEdge(3, 4, 5)

	edges, total, err := mst.Prim(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges: ", total)
	for i, e := range edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%d-%d", e.U, e.V)
	}
	// Output: Total: 11, Edges: 0-1 1-2 2-3 3-4
}

// ExampleCompute demonstrates the options-based dispatch.
func ExampleCompute() {
	g, _ := core.NewGraph(3)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 2)
	g.AddEdge(0, 2, 4)

	opts := mst.DefaultOptions() // Kruskal
	_, total, err := mst.Compute(g, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("total:", total)
	// Output: total: 3
}

// ExampleKruskal_errDisconnected shows the explicit failure on a graph
// whose edges cannot span all vertices.
func ExampleKruskal_errDisconnected() {
	g, _ := core.NewGraph(4)
	g.AddEdge(0, 1, 1)
	g.AddEdge(2, 3, 2)

	_, _, err := mst.Kruskal(g)
	fmt.Println(err)
	// Output: mst: graph is disconnected
}
