// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/kpaths/ksp"
)

// Runner executes queries on an ants pool. Create with New, stop with Release.
type Runner struct {
	pool *ants.PoolWithFunc
	opts Options
}

// task is the pool argument for one query.
type task struct {
	ctx context.Context
	g   ksp.Graph
	out *Outcome
	wg  *sync.WaitGroup
}

// New creates a Runner with size workers.
func New(size int, opts ...Option) (*Runner, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrPoolSize, size)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Runner{opts: cfg}
	pool, err := ants.NewPoolWithFunc(size, r.exec)
	if err != nil {
		return nil, fmt.Errorf("batch: create pool: %w", err)
	}
	r.pool = pool

	return r, nil
}

// Size returns the configured worker count.
func (r *Runner) Size() int { return r.pool.Cap() }

// Release stops the pool. Run must not be called afterwards.
func (r *Runner) Release() { r.pool.Release() }

// Run answers every query against g and returns outcomes in input order.
// Cancelling ctx cancels the searches still running; each reports
// ksp.ErrSearchCancelled in its Outcome.
func (r *Runner) Run(ctx context.Context, g ksp.Graph, qs []ksp.Query) []Outcome {
	out := make([]Outcome, len(qs))
	var wg sync.WaitGroup
	for i := range qs {
		out[i].Query = qs[i]
		wg.Add(1)
		if err := r.pool.Invoke(&task{ctx: ctx, g: g, out: &out[i], wg: &wg}); err != nil {
			out[i].Err = fmt.Errorf("%w: %w", ErrSubmit, err)
			wg.Done()
		}
	}
	wg.Wait()

	return out
}

// exec is the pool function.
func (r *Runner) exec(arg any) {
	t := arg.(*task)
	defer t.wg.Done()
	defer func() {
		if p := recover(); p != nil {
			t.out.Err = fmt.Errorf("%w: %v", ErrPanic, p)
			r.opts.Logger.Error("search panicked", "query", t.out.Query.String(), "panic", p)
		}
	}()
	r.search(t.ctx, t.g, t.out)
}

// tracerName identifies spans started by this package.
const tracerName = "github.com/katalvlaran/kpaths/batch"

// search runs one query and fills o.
func (r *Runner) search(ctx context.Context, g ksp.Graph, o *Outcome) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "batch.Search",
		trace.WithAttributes(
			attribute.String("kpaths.source", o.Query.Source),
			attribute.String("kpaths.target", o.Query.Target),
			attribute.Int("kpaths.k", o.Query.K),
			attribute.Int("kpaths.max_hops", o.Query.MaxHops),
		))
	defer span.End()

	var st ksp.Stats
	opts := slices.Clone(r.opts.Search)
	opts = append(opts, ksp.WithContext(ctx), ksp.WithStats(&st))
	if r.opts.Observer != nil {
		opts = append(opts, r.opts.Observer.SearchOptions()...)
	}

	start := time.Now()
	paths, err := o.Query.Run(g, opts...)
	o.Duration = time.Since(start)
	o.Paths, o.Err, o.Stats = paths, err, st

	span.SetAttributes(
		attribute.Int("kpaths.paths", len(paths)),
		attribute.Int("kpaths.pops", st.Pops),
		attribute.Int("kpaths.frontier_peak", st.PeakFrontier),
	)
	if r.opts.Observer != nil {
		r.opts.Observer.Observe(o.Query, paths, err, o.Duration, st)
	}

	attrs := []any{
		"source", o.Query.Source,
		"target", o.Query.Target,
		"paths", len(paths),
		"pops", st.Pops,
		"peak_frontier", st.PeakFrontier,
		"duration", o.Duration,
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.opts.Logger.Warn("search failed", append(attrs, "error", err)...)
		return
	}
	r.opts.Logger.Debug("search finished", attrs...)
}
