// SPDX-License-Identifier: MIT

// Package ksp enumerates the k cheapest loopless (simple) paths between two
// vertices of a directed weighted graph, subject to a maximum hop count.
//
// Overview:
//
//   - KShortest returns up to k paths from source to target, ordered by
//     non-decreasing total cost. Every path is simple (no vertex repeats),
//     starts at source, ends at target and has at most maxHops edges.
//   - The search keeps a frontier (min-heap) of partial paths. It pops the
//     cheapest one; if it ends at target the path is accepted, if its hop
//     budget is spent it is dropped, otherwise it is extended along every
//     outgoing edge whose head is not already on the path.
//   - Loop avoidance is per path, never global: a vertex skipped on one
//     branch is still reachable on another.
//
// When to use:
//
//   - Route alternatives in network topologies (backup paths, ECMP candidates).
//   - "Top-k" route reports where the hop count must stay small.
//
// Preconditions:
//
//   - Edge weights are expected to be non-negative. Under that assumption the
//     cost of popped states never decreases, so arrivals at target come out
//     already sorted. The engine does not scan for negative weights (see
//     core.Graph.Stats for a one-time check); with negative weights the search
//     still terminates, but result order is unspecified.
//
// Determinism:
//
//   - The frontier ordering key is total: (cost, node sequence compared
//     lexicographically, hops, push sequence). The push sequence only decides
//     between states with identical node sequences, which arise from parallel
//     edges of equal weight. For a fixed graph and arguments the output never
//     changes between runs.
//
// Performance and complexity:
//
//   - Visited sets are path-local, so a vertex may be expanded many times along
//     different partial paths. In the worst case (dense graphs) the frontier
//     grows exponentially in maxHops: O(d^maxHops) states for out-degree d.
//   - Each push copies the parent path: O(maxHops) time and space per state.
//   - Callers that need bounded latency should keep k and maxHops small and
//     use WithMaxFrontier and/or WithContext / WithTimeout. WithOnPop exposes
//     the live frontier size for observability.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidArgument: nil graph, empty source/target, k <= 0, maxHops < 0.
//   - ErrSearchCancelled: the context was cancelled or its deadline passed.
//   - ErrFrontierLimit:   the frontier outgrew WithMaxFrontier.
//
// With WithBestEffort, the last two also return the paths accepted so far.
//
// API reference:
//
//	func KShortest(
//	    g Graph,
//	    source, target string,
//	    k, maxHops int,
//	    opts ...Option,
//	) ([]Path, error)
//
// Thread safety:
//
//   - KShortest owns its frontier and result; concurrent calls may share one
//     read-only graph. *core.Graph is safe for concurrent readers.
package ksp
