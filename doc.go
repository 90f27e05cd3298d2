// Package kpaths finds the k cheapest loopless routes between two vertices of
// a directed weighted graph, under a maximum hop count.
//
// 🚀 What is kpaths?
//
//	A thread-safe, in-memory toolkit for "top-k route" reports:
//		• Core primitives: vertices & float-weighted directed edges under R/W locks
//		• Search: k-shortest loopless paths with a hop bound (ksp)
//		• Diagnostics: unweighted hop distances (bfs)
//		• I/O: JSON adjacency loader, CSV / console reports
//		• Scale-out: pooled batch queries, Prometheus metrics, tracing spans
//
// ✨ Why choose kpaths?
//
//   - Deterministic – a total frontier order, same answer every run
//   - Bounded – cancellation, deadlines and a frontier budget for the
//     exponential worst case
//   - Observable – hooks for every pop and every accepted path
//
// Packages:
//
//	core/      Graph, Vertex, Edge types & thread-safe primitives
//	ksp/       KShortest: lazy multi-path relaxation over a min-heap frontier
//	bfs/       fewest-hops distances, used to explain empty results
//	builder/   deterministic topologies (path, cycle, complete, grid, random)
//	loader/    JSON adjacency documents ⇄ *core.Graph
//	report/    CSV and text sinks, dated output folders
//	batch/     ants-pooled runner for many queries over one graph
//	metrics/   Prometheus recorder fed by engine hooks
//	cmd/kpaths  the command-line front end
//
// Quick ASCII example:
//
//	    A──1──B
//	    │    ╱│
//	    4  1  5
//	    │╱    │
//	    C──1──D
//
//	A→D with k=3, max_hops=4 yields A→B→C→D (3), A→C→D (5), A→B→D (6).
//
//	go install github.com/katalvlaran/kpaths/cmd/kpaths@latest
package kpaths
