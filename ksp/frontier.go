// SPDX-License-Identifier: MIT

package ksp

import "slices"

// state is one partial path on the frontier. It is never mutated after push.
//
// Invariants: path[0] == source, path[len(path)-1] == node,
// hops == len(path)-1, and the visited set is exactly the elements of path.
type state struct {
	cost float64
	node string
	path []string
	hops int
	seq  uint64 // push order
}

// visits reports whether id is already on the path.
func (s *state) visits(id string) bool {
	for _, n := range s.path {
		if n == id {
			return true
		}
	}

	return false
}

// less is the total frontier order: cost, then node sequence compared
// lexicographically (first divergence wins, a prefix sorts first), then hops,
// then push order.
func less(a, b *state) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if c := slices.Compare(a.path, b.path); c != 0 {
		return c < 0
	}
	if a.hops != b.hops {
		return a.hops < b.hops
	}

	return a.seq < b.seq
}

// frontier is a min-heap of *state ordered by less.
type frontier []*state

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less defines the comparison used by container/heap.
func (pq frontier) Less(i, j int) bool { return less(pq[i], pq[j]) }

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *state.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*state)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
