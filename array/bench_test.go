// Package array_test provides benchmarks for strided views over dense and
// segmented stores, using deterministic random fill.
package array_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvarray/array"
)

// benchSizes are the element counts to benchmark.
var benchSizes = []int{1 << 10, 1 << 16, 1 << 20}

// sinks to defeat dead-code elimination
var (
	sinkF float64
	sinkI int
)

func mustRandom(b *testing.B, f *array.Factory[float64], n int) *array.Array1D[float64] {
	b.Helper()
	a, err := f.MakeRandom1D(n, rand.New(rand.NewPCG(1337, 4242)))
	if err != nil {
		b.Fatal(err)
	}

	return a
}

func BenchmarkVisitAll(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		for _, step := range []int{1, 7} {
			b.Run(fmt.Sprintf("n=%d/step=%d", n, step), func(b *testing.B) {
				a := mustRandom(b, array.Primitive, n)
				v, err := array.View1D(a.Store(), 0, n, step)
				if err != nil {
					b.Fatal(err)
				}
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					var s float64
					v.VisitAll(func(x float64) { s += x })
					sinkF = s
				}
			})
		}
	}
}

func BenchmarkModifyMatching(b *testing.B) {
	b.ReportAllocs()
	split := array.Primitive.With(array.WithSegmentSize(1 << 12))
	for _, n := range benchSizes {
		for name, f := range map[string]*array.Factory[float64]{"dense": array.Primitive.With(array.WithSegmentation(false)), "segmented": split} {
			b.Run(fmt.Sprintf("n=%d/%s", n, name), func(b *testing.B) {
				x := mustRandom(b, f, n)
				y := mustRandom(b, f, n)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					x.ModifyMatchingRight(func(v, r float64) float64 { return v + r }, y)
				}
			})
		}
	}
}

func BenchmarkIndexOfLargest(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := mustRandom(b, array.Primitive, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkI = a.IndexOfLargest()
			}
		})
	}
}
