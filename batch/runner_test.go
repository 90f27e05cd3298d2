// SPDX-License-Identifier: MIT
package batch_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kpaths/batch"
	"github.com/katalvlaran/kpaths/builder"
	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/ksp"
)

func grid(t *testing.T) *core.Graph {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(21), builder.WithIntWeights(1, 5)},
		builder.Grid(4, 4))
	require.NoError(t, err)
	return g
}

// countingObserver records Observe calls.
type countingObserver struct {
	mu    sync.Mutex
	seen  map[string]int
	pops  int
	onPop func(ksp.Step)
}

func (c *countingObserver) SearchOptions() []ksp.Option {
	return []ksp.Option{ksp.WithOnPop(func(s ksp.Step) {
		c.mu.Lock()
		c.pops++
		c.mu.Unlock()
		if c.onPop != nil {
			c.onPop(s)
		}
	})}
}

func (c *countingObserver) Observe(q ksp.Query, _ []ksp.Path, _ error, _ time.Duration, _ ksp.Stats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seen == nil {
		c.seen = make(map[string]int)
	}
	c.seen[q.String()]++
}

func TestRun_OrderAndResults(t *testing.T) {
	g := grid(t)
	var qs []ksp.Query
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			qs = append(qs, ksp.Query{Source: "0,0", Target: fmt.Sprintf("%d,%d", r, c), K: 5, MaxHops: 6})
		}
	}

	obs := &countingObserver{}
	runner, err := batch.New(3, batch.WithObserver(obs))
	require.NoError(t, err)
	defer runner.Release()
	assert.Equal(t, 3, runner.Size())

	out := runner.Run(context.Background(), g, qs)
	require.Len(t, out, len(qs))
	totalPops := 0
	for i, o := range out {
		assert.Equal(t, qs[i], o.Query)
		require.NoError(t, o.Err)
		want, err := qs[i].Run(g)
		require.NoError(t, err)
		assert.Equal(t, want, o.Paths)
		assert.Equal(t, len(o.Paths), o.Stats.Accepted)
		totalPops += o.Stats.Pops
	}
	assert.Len(t, obs.seen, len(qs))
	assert.Equal(t, totalPops, obs.pops)
}

func TestRun_FailuresStayLocal(t *testing.T) {
	g := grid(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	runner, err := batch.New(2,
		batch.WithLogger(logger),
		batch.WithSearchOptions(ksp.WithMaxFrontier(1000)),
	)
	require.NoError(t, err)
	defer runner.Release()

	out := runner.Run(context.Background(), g, []ksp.Query{
		{Source: "0,0", Target: "3,3", K: 2, MaxHops: 6},
		{Source: "0,0", Target: "3,3", K: 0, MaxHops: 6},
		{Source: "0,0", Target: "9,9", K: 2, MaxHops: 6},
	})
	require.Len(t, out, 3)
	assert.NoError(t, out[0].Err)
	assert.Len(t, out[0].Paths, 2)
	assert.ErrorIs(t, out[1].Err, ksp.ErrInvalidArgument)
	assert.NoError(t, out[2].Err)
	assert.Empty(t, out[2].Paths)

	assert.Contains(t, buf.String(), "search failed")
	assert.Contains(t, buf.String(), "search finished")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner, err := batch.New(1)
	require.NoError(t, err)
	defer runner.Release()

	out := runner.Run(ctx, grid(t), []ksp.Query{{Source: "0,0", Target: "3,3", K: 1, MaxHops: 6}})
	require.Len(t, out, 1)
	assert.ErrorIs(t, out[0].Err, ksp.ErrSearchCancelled)
}

func TestRun_PanicIsReported(t *testing.T) {
	obs := &countingObserver{onPop: func(ksp.Step) { panic("hook exploded") }}
	runner, err := batch.New(1, batch.WithObserver(obs))
	require.NoError(t, err)
	defer runner.Release()

	out := runner.Run(context.Background(), grid(t), []ksp.Query{{Source: "0,0", Target: "1,1", K: 1, MaxHops: 2}})
	require.Len(t, out, 1)
	assert.ErrorIs(t, out[0].Err, batch.ErrPanic)
	assert.Contains(t, out[0].Err.Error(), "hook exploded")
}

func TestRun_AfterRelease(t *testing.T) {
	runner, err := batch.New(1)
	require.NoError(t, err)
	runner.Release()

	out := runner.Run(context.Background(), grid(t), []ksp.Query{{Source: "0,0", Target: "1,1", K: 1, MaxHops: 2}})
	require.Len(t, out, 1)
	assert.ErrorIs(t, out[0].Err, batch.ErrSubmit)
}

func TestNew_Validation(t *testing.T) {
	_, err := batch.New(0)
	assert.ErrorIs(t, err, batch.ErrPoolSize)
	assert.Panics(t, func() { batch.WithLogger(nil) })
}
