// SPDX-License-Identifier: MIT
package ksp_test

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/ksp"
)

// ExampleKShortest lists the three loopless A→D routes of a small diamond.
func ExampleKShortest() {
	// 1) Build the graph.
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "C", 4)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("B", "D", 5)
	_, _ = g.AddEdge("C", "D", 1)

	// 2) Ask for up to 3 paths of at most 4 hops.
	paths, err := ksp.KShortest(g, "A", "D", 3, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print in acceptance (cost) order.
	for i, p := range paths {
		fmt.Printf("%d: %s (cost %.1f, hops %d)\n", i+1, p, p.Cost, p.Hops)
	}

	// Output:
	// 1: A → B → C → D (cost 3.0, hops 3)
	// 2: A → C → D (cost 5.0, hops 2)
	// 3: A → B → D (cost 6.0, hops 2)
}

// ExampleKShortest_hopBound shows a tighter hop budget dropping the cheapest route.
func ExampleKShortest_hopBound() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "C", 4)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("B", "D", 5)
	_, _ = g.AddEdge("C", "D", 1)

	var st ksp.Stats
	paths, _ := ksp.KShortest(g, "A", "D", 3, 2, ksp.WithStats(&st))
	for _, p := range paths {
		fmt.Println(p, p.Cost)
	}
	fmt.Println("pruned by hops:", st.PrunedHops)

	// Output:
	// A → C → D 5
	// A → B → D 6
	// pruned by hops: 1
}
