// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, in-memory directed Graph that the
// path search engine reads from.
//
// The Graph G = (V,E) is a mapping from vertex ID to an ordered list of
// outgoing weighted edges:
//
//   - Vertex IDs are opaque non-empty strings.
//   - Edges are directed (From→To) and carry a float64 Weight.
//   - Outgoing edges of a vertex are kept in insertion order, so a graph
//     loaded from a serialized adjacency preserves the listed order.
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); readers never block each other.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                  // O(1)
//	HasVertex(id string) bool                   // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64) (string, error) // O(1) amortized
//	HasEdge(from, to string) bool               // O(d)
//	GetEdge(edgeID string) (*Edge, error)       // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)       // O(d), insertion order
//	NeighborIDs(id string) ([]string, error)    // O(d log d), unique, sorted
//	Vertices() []string                         // O(V log V)
//	Edges() []*Edge                             // O(E log E)
//	VertexCount(), EdgeCount() int              // O(1)
//	Stats() *GraphStats                         // O(E)
//
// Weights:
//
// The graph accepts any finite weight, negative included. The k-shortest
// engine only guarantees cost ordering for non-negative weights; that is a
// caller precondition, not a graph invariant. Stats().NegativeEdges lets a
// caller check it once instead of before every search. NaN and ±Inf are
// rejected with ErrBadWeight since no ordering is defined for them.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – NaN or infinite weight
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
