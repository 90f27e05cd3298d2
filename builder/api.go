// SPDX-License-Identifier: MIT
// Package: kpaths/builder
//
// api.go - BuildGraph, the single entry point that turns constructors into a
// ready *core.Graph for tests, examples and benchmarks.

package builder

import (
	"fmt"

	"github.com/katalvlaran/kpaths/core"
)

// Constructor adds one topology to g using the resolved configuration.
// It validates its own parameters up front, returns builder sentinels
// instead of panicking, and emits vertices and arcs in a fixed order so that
// a seeded build is reproducible.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts once and runs cons
// against it in order. Constructors may share vertex IDs, which is how a
// fixture composes e.g. a Path with the back arcs of a Cycle.
//
// The first failing constructor aborts the build; its error is wrapped with
// the constructor index, so errors.Is against ErrTooFewVertices,
// ErrInvalidProbability, ErrNeedRandSource or ErrConstructFailed still works.
//
// Complexity: the sum of the constructors' costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, build := range cons {
		if build == nil {
			return nil, fmt.Errorf("BuildGraph: constructor #%d is nil: %w", i, ErrConstructFailed)
		}
		if err := build(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: constructor #%d: %w", i, err)
		}
	}

	return g, nil
}
