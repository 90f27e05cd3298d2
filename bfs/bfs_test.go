// SPDX-License-Identifier: MIT
package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kpaths/bfs"
	"github.com/katalvlaran/kpaths/builder"
	"github.com/katalvlaran/kpaths/core"
)

func TestBFS_HopDistances(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(5))
	require.NoError(t, err)
	_, _ = g.AddEdge("A", "C", 100) // weight is irrelevant to hops

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Order)

	hops, ok := res.HopsTo("E")
	assert.True(t, ok)
	assert.Equal(t, 3, hops)

	path, err := res.PathTo("E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D", "E"}, path)

	_, ok = res.HopsTo("Z")
	assert.False(t, ok)
	_, err = res.PathTo("Z")
	assert.Error(t, err)
}

func TestBFS_DirectedAndMaxDepth(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	require.NoError(t, err)

	res, err := bfs.BFS(g, "0", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, res.Order)

	// Reverse direction needs the long way round.
	res, err = bfs.BFS(g, "1")
	require.NoError(t, err)
	hops, _ := res.HopsTo("0")
	assert.Equal(t, 5, hops)
}

func TestBFS_Errors(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)

	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.BFS(g, "Q")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	stop := errors.New("stop")
	res, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B"}, res.Order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
