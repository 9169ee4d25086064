package search_test

import (
	"testing"

	"github.com/katalvlaran/burrow/search"
)

// BenchmarkSolve_Sample measures a full A* run on the depth-2 sample.
func BenchmarkSolve_Sample(b *testing.B) {
	prob := mustProblem(b, sampleCols)
	quiet := search.WithLogger(quietLogger())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Solve(prob.Params, prob.Start, quiet); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_SampleNoPruning shows the cost of expanding every legal move.
func BenchmarkSolve_SampleNoPruning(b *testing.B) {
	prob := mustProblem(b, sampleCols)
	opts := []search.Option{search.WithLogger(quietLogger()), search.WithoutPruning()}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Solve(prob.Params, prob.Start, opts...); err != nil {
			b.Fatal(err)
		}
	}
}
