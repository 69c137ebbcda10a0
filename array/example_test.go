package array_test

import (
	"fmt"

	"github.com/katalvlaran/lvarray/aggregator"
	"github.com/katalvlaran/lvarray/array"
	"github.com/katalvlaran/lvarray/scalar"
)

// ExampleView1D views every second element of a sequence.
func ExampleView1D() {
	base := array.Primitive.CopyRaw(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	v, _ := array.View1D(base.Store(), 2, 9, 2)

	fmt.Println(v)
	fmt.Println("sum:", aggregator.Fold(v, aggregator.Sum(v.Domain())))
	fmt.Println("largest at:", v.IndexOfLargest())
	// Output:
	// [2, 4, 6, 8]
	// sum: 20
	// largest at: 3
}

// ExampleArray2D_SliceRow shows that rows and columns share the store.
func ExampleArray2D_SliceRow() {
	m, _ := array.Primitive.CopyRaw2D([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	m.SliceRow(1, 0).ModifyAll(func(v float64) float64 { return v * 10 })
	fmt.Print(m)
	fmt.Println(m.SliceColumn(0, 2).ToRawCopy())
	// Output:
	// [1, 2, 3]
	// [40, 50, 60]
	// [3 60]
}

// ExampleArrayAnyD_Slice walks one dimension of a rational cube.
func ExampleArrayAnyD_Slice() {
	a, _ := array.Rational.MakeAnyD(2, 2, 2)
	a.FillSet(2, scalar.NewRational(1, 3), 1, 1, 0)
	fmt.Println(a.Slice(2, 1, 1, 0))
	fmt.Println(a.Get(1, 1, 1))
	// Output:
	// [1/3, 1/3]
	// 1/3
}
