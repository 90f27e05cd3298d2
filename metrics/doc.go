// SPDX-License-Identifier: MIT

// Package metrics exports k-shortest search telemetry to Prometheus.
//
// A Recorder feeds on two sources: engine hooks (SearchOptions wires
// ksp.WithOnPop / ksp.WithOnAccept) for the live frontier size, and finished
// searches (Observe) for outcome counts, latency and peak frontier. The live
// frontier gauge is the signal to watch given the exponential worst case.
//
// Collectors:
//
//	kpaths_search_total{outcome}      counter   ok|empty|invalid|cancelled|frontier_limit|error
//	kpaths_search_duration_seconds    histogram
//	kpaths_frontier_peak              histogram
//	kpaths_paths_accepted_total       counter
//	kpaths_frontier_size              gauge     last observed frontier size
package metrics
