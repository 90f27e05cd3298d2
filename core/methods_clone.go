// SPDX-License-Identifier: MIT

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: configuration, vertices, edges and
// adjacency order. The clone carries over nextEdgeID so later AddEdge calls on
// it never collide with copied edge IDs.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := &Graph{
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string][]*Edge, len(g.adjacency)),
	}
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id := range g.vertices {
		clone.vertices[id] = &Vertex{ID: id}
	}
	// Walk adjacency, not the edge map, to keep per-vertex insertion order.
	var ne *Edge
	for from, list := range g.adjacency {
		out := make([]*Edge, len(list))
		for i, e := range list {
			ne = &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight}
			clone.edges[ne.ID] = ne
			out[i] = ne
		}
		clone.adjacency[from] = out
	}

	return clone
}
