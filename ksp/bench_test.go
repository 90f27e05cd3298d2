// SPDX-License-Identifier: MIT
// Package ksp_test provides benchmarks for KShortest on builder topologies.
package ksp_test

import (
	"testing"

	"github.com/katalvlaran/kpaths/builder"
	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/ksp"
)

func mustBuild(b *testing.B, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(nil, bopts, cons...)
	if err != nil {
		b.Fatalf("BuildGraph: %v", err)
	}
	return g
}

// BenchmarkKShortest_Complete8 stresses the dense worst case.
func BenchmarkKShortest_Complete8(b *testing.B) {
	g := mustBuild(b, []builder.BuilderOption{builder.WithSeed(1), builder.WithUniformWeight(1, 10)},
		builder.Complete(8))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ksp.KShortest(g, "0", "7", 10, 5)
	}
}

// BenchmarkKShortest_Grid measures a sparse lattice with many equal-cost routes.
func BenchmarkKShortest_Grid(b *testing.B) {
	g := mustBuild(b, nil, builder.Grid(6, 6))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ksp.KShortest(g, "0,0", "5,5", 10, 10)
	}
}

// BenchmarkKShortest_RandomSparse measures a typical sparse topology.
func BenchmarkKShortest_RandomSparse(b *testing.B) {
	g := mustBuild(b, []builder.BuilderOption{builder.WithSeed(7), builder.WithIntWeights(1, 20)},
		builder.RandomSparse(200, 0.03))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ksp.KShortest(g, "0", "199", ksp.DefaultK, 6)
	}
}
