// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

// ExampleGraph demonstrates basic creation and queries.
func ExampleGraph() {
	// 1) Create a directed graph (no loops, no multi-edges by default).
	g := core.NewGraph()

	// 2) Add edges (auto-adds vertices A, B, C).
	_, _ = g.AddEdge("A", "C", 4)
	_, _ = g.AddEdge("A", "B", 1.5)
	_, _ = g.AddEdge("B", "C", 1)

	// 3) Inspect vertices and edges.
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	// 4) Outgoing edges keep insertion order.
	out, _ := g.Neighbors("A")
	for _, e := range out {
		fmt.Printf("%s→%s %.1f\n", e.From, e.To, e.Weight)
	}

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? false
	// A→C 4.0
	// A→B 1.5
}

// ExampleGraph_loops demonstrates self-loops and multi-edges.
func ExampleGraph_loops() {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())

	// Two self-loops with different weights.
	_, _ = g.AddEdge("X", "X", 1)
	_, _ = g.AddEdge("X", "X", 2)

	st := g.Stats()
	fmt.Println(st.EdgeCount, st.LoopCount)

	// Output:
	// 2 2
}
