// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	AllowsMulti bool // parallel edges permitted
	AllowsLoops bool // self-loops permitted

	VertexCount int // number of vertices
	EdgeCount   int // number of edges

	LoopCount     int // edges with From == To
	NegativeEdges int // edges with Weight < 0
	SinkCount     int // vertices without outgoing edges
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Stats produces a deterministic, read-only snapshot of configuration flags
// and catalog sizes, including the number of negative-weight edges. The
// k-shortest engine never checks weight signs itself; Stats is the one-time
// scan for callers that want to.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and vertex count.
//   - Stage 2: Acquire muEdgeAdj.RLock, classify edges and count sinks.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
		if e.Weight < 0 {
			stats.NegativeEdges++
		}
	}
	for id := range g.vertices {
		if len(g.adjacency[id]) == 0 {
			stats.SinkCount++
		}
	}

	return &stats
}
