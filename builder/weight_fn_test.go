// SPDX-License-Identifier: MIT
// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/kpaths/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"IntUniformWeightFn_minNegative", func() builder.WeightFn { return builder.IntUniformWeightFn(-2, 1) }},
		{"IntUniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.IntUniformWeightFn(3, 2) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() }, tc.name)
		})
	}
}

// TestWeightFnBehavior checks ranges, nil-rng fallback and determinism.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, 7.5, builder.ConstantWeightFn(7.5)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(2, 3)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.IntUniformWeightFn(2, 3)(nil))
	assert.Equal(t, 4.0, builder.UniformWeightFn(4, 4)(rand.New(rand.NewSource(1))))

	uni := builder.UniformWeightFn(2, 3)
	ints := builder.IntUniformWeightFn(1, 3)
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		w := uni(r)
		assert.GreaterOrEqual(t, w, 2.0)
		assert.Less(t, w, 3.0)

		n := ints(r)
		assert.Contains(t, []float64{1, 2, 3}, n)
	}

	a := builder.UniformWeightFn(0, 10)
	r1, r2 := rand.New(rand.NewSource(99)), rand.New(rand.NewSource(99))
	for i := 0; i < 10; i++ {
		assert.Equal(t, a(r1), a(r2))
	}
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}
