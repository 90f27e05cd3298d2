// SPDX-License-Identifier: MIT

// Package builder provides deterministic, functional-options graph
// constructors that produce directed *core.Graph fixtures for the k-shortest
// search: tests, benchmarks and examples all build their topologies here.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(gopts, bopts, cons...) creates a core.Graph, resolves the
//     builder configuration and runs constructors in order.
//   - Topologies (Constructor implementations, impl_*.go):
//     – Path(n):            0→1→…→n-1.
//     – Cycle(n):           0→1→…→n-1→0.
//     – Complete(n):        every ordered pair (i,j), i≠j.
//     – Grid(rows, cols):   4-neighborhood lattice "r,c", arcs in both directions.
//     – RandomSparse(n, p): each ordered pair kept with probability p.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
//     PrefixIDFn.
//   - Edge-weight distributions (WeightFn): DefaultWeightFn,
//     ConstantWeightFn, UniformWeightFn, IntUniformWeightFn.
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order produce
//     identical graphs (same vertex IDs, same edge insertion order, same weights).
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors and never panic.
//   - Weights are always non-negative, matching the engine's precondition.
package builder
