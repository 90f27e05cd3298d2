// SPDX-License-Identifier: MIT
package loader_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/kpaths/loader"
)

// ExampleLoad loads both entry forms and coerces string weights.
func ExampleLoad() {
	doc := `{"A": [["B", "2.5"], {"to": "C", "weight": 1}], "B": [["C", 1]]}`
	g, err := loader.Load(strings.NewReader(doc))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s %s→%s %.1f\n", e.ID, e.From, e.To, e.Weight)
	}

	// Output:
	// e1 A→B 2.5
	// e2 A→C 1.0
	// e3 B→C 1.0
}

// ExampleGraphLoadError shows the offending node being named.
func ExampleGraphLoadError() {
	_, err := loader.Load(strings.NewReader(`{"R1": [["R2", "fast"]]}`))
	fmt.Println(err)

	// Output:
	// loader: node "R1" entry 0: weight is not numeric: "fast"
}
