// SPDX-License-Identifier: MIT

// Package ksp defines core types and configuration options
// for the k-shortest loopless paths search.
package ksp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/kpaths/core"
)

// Defaults used by callers that do not pick their own bounds.
const (
	DefaultK       = 10
	DefaultMaxHops = 10
)

// pathSeparator joins node IDs in Path.String.
const pathSeparator = " → "

// Sentinel errors returned by KShortest.
var (
	// ErrInvalidArgument indicates a nil graph, an empty endpoint,
	// k <= 0 or maxHops < 0. Returned before any search work happens.
	ErrInvalidArgument = errors.New("ksp: invalid argument")

	// ErrSearchCancelled indicates that the context supplied with WithContext
	// (or the deadline from WithTimeout) fired mid-search.
	ErrSearchCancelled = errors.New("ksp: search cancelled")

	// ErrFrontierLimit indicates that the frontier grew beyond WithMaxFrontier.
	ErrFrontierLimit = errors.New("ksp: frontier limit exceeded")

	// errBadMaxFrontier is the panic message of WithMaxFrontier(n<0).
	errBadMaxFrontier = errors.New("ksp: MaxFrontier must be non-negative")

	// errBadTimeout is the panic message of WithTimeout(d<0).
	errBadTimeout = errors.New("ksp: Timeout must be non-negative")
)

// Graph is the read-only view KShortest needs: the outgoing edges of a vertex
// in a stable order. *core.Graph satisfies it. Returning core.ErrVertexNotFound
// is treated as "no outgoing edges".
type Graph interface {
	Neighbors(id string) ([]*core.Edge, error)
}

// Path is one accepted result. Field order (nodes, cost, hops) is the
// contract owed to report renderers.
type Path struct {
	Nodes []string // source..target inclusive, no repeats
	Cost  float64  // sum of edge weights
	Hops  int      // len(Nodes) - 1
}

// String renders the node sequence as "A → B → C".
func (p Path) String() string {
	return strings.Join(p.Nodes, pathSeparator)
}

// Query bundles the arguments of one KShortest call so that callers running
// many searches (batch runners, report sinks) can pass them around as a value.
type Query struct {
	Source  string
	Target  string
	K       int
	MaxHops int
}

// String renders the query as "A→D k=3 maxHops=4".
func (q Query) String() string {
	return fmt.Sprintf("%s→%s k=%d maxHops=%d", q.Source, q.Target, q.K, q.MaxHops)
}

// Run executes KShortest for q on g.
func (q Query) Run(g Graph, opts ...Option) ([]Path, error) {
	return KShortest(g, q.Source, q.Target, q.K, q.MaxHops, opts...)
}

// Step describes one frontier pop, passed to the WithOnPop hook.
type Step struct {
	Node     string  // vertex at the end of the popped partial path
	Cost     float64 // accumulated cost of the popped partial path
	Hops     int     // edges on the popped partial path
	Frontier int     // frontier size after the pop
}

// Stats summarizes the work done by one KShortest call.
type Stats struct {
	Pops         int // states popped from the frontier
	Pushes       int // states pushed (including the initial one)
	Accepted     int // paths accepted into the result
	PrunedHops   int // states dropped because hops == maxHops
	PrunedLoops  int // edges skipped because their head was already on the path
	PeakFrontier int // largest frontier size observed
}

// Options configures the behavior of KShortest.
//
// Ctx         – cancellation / deadline, checked once per frontier pop.
// Timeout     – if > 0, a deadline derived from Ctx.
// MaxFrontier – if > 0, fail with ErrFrontierLimit when the frontier grows past it.
// BestEffort  – on cancellation or frontier limit, return partial results with the error.
type Options struct {
	Ctx         context.Context
	Timeout     time.Duration
	MaxFrontier int
	BestEffort  bool

	OnPop    func(Step) // called after every frontier pop
	OnAccept func(Path) // called when a path is accepted

	Stats *Stats // if non-nil, filled in when KShortest returns
}

// Option represents a functional option for configuring KShortest.
type Option func(*Options)

// DefaultOptions returns Options with sensible defaults:
//   - Ctx:         context.Background()
//   - Timeout:     0 (no deadline)
//   - MaxFrontier: 0 (unbounded)
//   - BestEffort:  false (errors discard partial results)
//   - no-op hooks, no Stats sink.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnPop:    func(Step) {},
		OnAccept: func(Path) {},
	}
}

// WithContext sets a context whose cancellation aborts the search.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeout bounds the search duration. Zero disables the deadline.
// Panics on negative durations (option constructors validate eagerly).
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic(errBadTimeout.Error())
	}
	return func(o *Options) {
		o.Timeout = d
	}
}

// WithMaxFrontier caps the number of pending partial paths. Zero means no cap.
// Panics on negative values.
func WithMaxFrontier(n int) Option {
	if n < 0 {
		panic(errBadMaxFrontier.Error())
	}
	return func(o *Options) {
		o.MaxFrontier = n
	}
}

// WithBestEffort makes KShortest return the paths accepted so far together
// with ErrSearchCancelled or ErrFrontierLimit, instead of nil.
func WithBestEffort() Option {
	return func(o *Options) {
		o.BestEffort = true
	}
}

// WithOnPop registers a callback invoked after every frontier pop.
// Repeated use chains callbacks in registration order.
func WithOnPop(fn func(Step)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnPop
		o.OnPop = func(s Step) {
			prev(s)
			fn(s)
		}
	}
}

// WithOnAccept registers a callback invoked for every accepted path.
// Repeated use chains callbacks in registration order.
func WithOnAccept(fn func(Path)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnAccept
		o.OnAccept = func(p Path) {
			prev(p)
			fn(p)
		}
	}
}

// WithStats makes KShortest write its work counters into s on return.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}
