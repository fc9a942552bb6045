package tsp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/tspanneal/tsp"
)

func benchSolve(b *testing.B, n int, ev tsp.Evaluation, precompute bool) {
	pts := randomPoints(n, 1)
	opts := quickOptions(20000)
	opts.Evaluation = ev
	opts.Precompute = precompute

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(context.Background(), pts, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Delta200(b *testing.B)      { benchSolve(b, 200, tsp.EvalDelta, false) }
func BenchmarkSolve_DeltaTable200(b *testing.B) { benchSolve(b, 200, tsp.EvalDelta, true) }
func BenchmarkSolve_Full200(b *testing.B)       { benchSolve(b, 200, tsp.EvalFull, false) }

func BenchmarkOptimalTour_12(b *testing.B) {
	pts := randomPoints(12, 1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := tsp.OptimalTour(pts, tsp.Euclidean); err != nil {
			b.Fatal(err)
		}
	}
}
