// SPDX-License-Identifier: MIT

// Notes on implementation choices:
//
//   - The frontier is a container/heap min-heap of immutable partial paths.
//   - Each child state gets its own copy of the parent path; the path doubles
//     as the visited set (membership is a scan bounded by maxHops+1).
//   - A state is accepted when popped at target, never when pushed, so the
//     result order follows the pop order.
//   - Cancellation is checked once per pop; the frontier budget once per push.

package ksp

import (
	"container/heap"
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

// KShortest returns up to k loopless paths from source to target with at most
// maxHops edges each, ordered by non-decreasing cost (given non-negative
// weights).
//
// Returns:
//
//   - paths: accepted paths in acceptance order; empty (non-nil) if target is
//     unreachable within maxHops.
//   - err:   ErrInvalidArgument on bad input, ErrSearchCancelled /
//     ErrFrontierLimit when the search is cut short, or a wrapped error from
//     the Graph. With WithBestEffort the partial result accompanies the last two.
//
// Preconditions and validation (in order):
//  1. g must be non-nil.
//  2. source and target must be non-empty.
//  3. k must be > 0.
//  4. maxHops must be >= 0.
//
// Vertices missing from g are not an error; they simply have no outgoing
// edges. In particular source == target always yields ([source], 0, 0) first.
//
// Complexity:
//
//   - Time:  O(S · (maxHops + log S)) for S pushed states; S is exponential in
//     maxHops in the worst case.
//   - Space: O(S · maxHops).
func KShortest(g Graph, source, target string, k, maxHops int, opts ...Option) ([]Path, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate arguments before any work
	if err := validate(g, source, target, k, maxHops); err != nil {
		return nil, err
	}

	// 3) Derive the search context
	ctx := cfg.Ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	// 4) Run
	r := &runner{
		g:       g,
		options: cfg,
		source:  source,
		target:  target,
		k:       k,
		maxHops: maxHops,
		result:  make([]Path, 0, min(k, resultPrealloc)),
	}
	r.init()
	err := r.process(ctx)

	if cfg.Stats != nil {
		*cfg.Stats = r.stats
	}
	if err != nil {
		if cfg.BestEffort && (errors.Is(err, ErrSearchCancelled) || errors.Is(err, ErrFrontierLimit)) {
			return r.result, err
		}
		return nil, err
	}

	return r.result, nil
}

// validate checks the arguments of KShortest.
func validate(g Graph, source, target string, k, maxHops int) error {
	if g == nil {
		return fmt.Errorf("%w: graph is nil", ErrInvalidArgument)
	}
	if cg, ok := g.(*core.Graph); ok && cg == nil {
		return fmt.Errorf("%w: graph is nil", ErrInvalidArgument)
	}
	if source == "" {
		return fmt.Errorf("%w: source is empty", ErrInvalidArgument)
	}
	if target == "" {
		return fmt.Errorf("%w: target is empty", ErrInvalidArgument)
	}
	if k <= 0 {
		return fmt.Errorf("%w: k=%d must be positive", ErrInvalidArgument, k)
	}
	if maxHops < 0 {
		return fmt.Errorf("%w: maxHops=%d must be non-negative", ErrInvalidArgument, maxHops)
	}

	return nil
}

// resultPrealloc caps the initial result capacity; k may be far larger than
// the number of paths that exist.
const resultPrealloc = 64

// runner holds the mutable state for a single KShortest execution.
type runner struct {
	g       Graph   // read-only input graph
	options Options // hooks, limits
	source  string
	target  string
	k       int
	maxHops int

	pq      frontier // min-heap of pending partial paths
	nextSeq uint64   // push counter, final tie-break of the frontier key
	result  []Path   // accepted paths, append-only
	stats   Stats
}

// init pushes the zero-cost source state.
func (r *runner) init() {
	heap.Init(&r.pq)
	r.push(&state{
		cost: 0,
		node: r.source,
		path: []string{r.source},
		hops: 0,
	})
}

// process is the expand/accept loop.
//
// Loop termination conditions:
//
//   - The frontier becomes empty (all bounded simple paths enumerated).
//   - k paths have been accepted.
//   - The context fires (ErrSearchCancelled) or the frontier budget is
//     exceeded (ErrFrontierLimit).
func (r *runner) process(ctx context.Context) error {
	var st *state
	for r.pq.Len() > 0 && len(r.result) < r.k {
		// 1) Honor cancellation once per pop.
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w after %d paths: %w", ErrSearchCancelled, len(r.result), err)
		}

		// 2) Pop the cheapest partial path.
		st = heap.Pop(&r.pq).(*state)
		r.stats.Pops++
		r.options.OnPop(Step{Node: st.node, Cost: st.cost, Hops: st.hops, Frontier: r.pq.Len()})

		// 3) Arrived: accept and do not extend.
		if st.node == r.target {
			p := Path{Nodes: st.path, Cost: st.cost, Hops: st.hops}
			r.result = append(r.result, p)
			r.stats.Accepted++
			r.options.OnAccept(p)
			continue
		}

		// 4) Hop budget spent.
		if st.hops >= r.maxHops {
			r.stats.PrunedHops++
			continue
		}

		// 5) Extend along every outgoing edge.
		if err := r.expand(st); err != nil {
			return err
		}
	}

	return nil
}

// expand pushes one child state per outgoing edge of st.node whose head is
// not already on st.path.
func (r *runner) expand(st *state) error {
	edges, err := r.g.Neighbors(st.node)
	if err != nil {
		if errors.Is(err, core.ErrVertexNotFound) {
			return nil // unknown vertex: no outgoing edges
		}
		return fmt.Errorf("ksp: failed to get neighbors of %q: %w", st.node, err)
	}

	var e *core.Edge
	for _, e = range edges {
		// Loop avoidance: the path is the visited set. Covers self-loops too.
		if st.visits(e.To) {
			r.stats.PrunedLoops++
			continue
		}

		// New path slice per child; the parent stays untouched.
		path := make([]string, len(st.path)+1)
		copy(path, st.path)
		path[len(st.path)] = e.To

		r.push(&state{
			cost: st.cost + e.Weight,
			node: e.To,
			path: path,
			hops: st.hops + 1,
		})

		if r.options.MaxFrontier > 0 && r.pq.Len() > r.options.MaxFrontier {
			return fmt.Errorf("%w: %d > %d after %d paths",
				ErrFrontierLimit, r.pq.Len(), r.options.MaxFrontier, len(r.result))
		}
	}

	return nil
}

// push stamps st with the next sequence number and adds it to the frontier.
func (r *runner) push(st *state) {
	st.seq = r.nextSeq
	r.nextSeq++
	heap.Push(&r.pq, st)
	r.stats.Pushes++
	if n := r.pq.Len(); n > r.stats.PeakFrontier {
		r.stats.PeakFrontier = n
	}
}
