// SPDX-License-Identifier: MIT

// Package bfs computes unweighted hop distances over a core.Graph.
//
// The k-shortest engine explores paths by cost and gives up at maxHops; when
// it returns nothing, the caller usually wants to know why. BFS answers that
// in O(V + E): the fewest edges from the start to every reachable vertex, so
// "target needs 7 hops but max_hops is 5" can be told apart from
// "target is unreachable".
//
// Weights are ignored. Neighbors are expanded in sorted ID order, which makes
// Order and Parent deterministic.
//
// Options:
//
//   - WithContext: cancellation, checked once per dequeue.
//   - WithMaxDepth: stop expanding beyond depth d (0 = unlimited).
//   - WithOnVisit: hook per visited vertex; a returned error aborts the walk.
package bfs
