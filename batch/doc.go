// SPDX-License-Identifier: MIT

// Package batch answers many k-shortest queries against one shared graph on
// a bounded goroutine pool (github.com/panjf2000/ants/v2).
//
// Each query owns its frontier and result; the graph is only read. Outcomes
// come back in input order regardless of completion order. A query failing
// (bad arguments, cancellation, frontier budget) never aborts its siblings.
package batch
