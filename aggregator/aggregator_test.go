package aggregator_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvarray/aggregator"
	"github.com/katalvlaran/lvarray/scalar"
)

// values is a minimal Visitable over a slice.
type values[N any] []N

func (v values[N]) VisitAll(visitor func(N)) {
	for _, x := range v {
		visitor(x)
	}
}

// TestPrimitiveAggregators covers every aggregator on float64 data.
func TestPrimitiveAggregators(t *testing.T) {
	d := scalar.Primitive{}
	src := values[float64]{3, -4, 0, 1}

	require.Equal(t, 0.0, aggregator.Fold(src, aggregator.Sum[float64](d)))
	require.Equal(t, 0.0, aggregator.Fold(src, aggregator.Product[float64](d)))
	require.Equal(t, -4.0, aggregator.Fold(src, aggregator.Min[float64](d)).Value)
	require.Equal(t, 3.0, aggregator.Fold(src, aggregator.Max[float64](d)).Value)
	require.Equal(t, 4.0, aggregator.Fold(src, aggregator.Largest[float64](d)))
	require.Equal(t, 1.0, aggregator.Fold(src, aggregator.Smallest[float64](d)))
	require.Equal(t, 8.0, aggregator.Fold(src, aggregator.Norm1[float64](d)))
	require.Equal(t, 26.0, aggregator.Fold(src, aggregator.SumOfSquares[float64](d)))
	require.InDelta(t, 5.0990195, aggregator.Fold(src, aggregator.Norm2[float64](d)), 1e-6)
	require.Equal(t, 3, aggregator.Fold(src, aggregator.Cardinality[float64](d)))
}

// TestEmptyRange checks seeds survive an empty fold.
func TestEmptyRange(t *testing.T) {
	d := scalar.Primitive{}
	var src values[float64]

	require.Equal(t, 0.0, aggregator.Fold(src, aggregator.Sum[float64](d)))
	require.Equal(t, 1.0, aggregator.Fold(src, aggregator.Product[float64](d)))
	require.False(t, aggregator.Fold(src, aggregator.Max[float64](d)).Valid)
	require.Equal(t, 0.0, aggregator.Fold(src, aggregator.Smallest[float64](d)))
}

// TestAggregatorReuse verifies folds do not mutate the aggregator.
func TestAggregatorReuse(t *testing.T) {
	sum := aggregator.Sum[float64](scalar.Primitive{})
	require.Equal(t, 3.0, aggregator.Fold(values[float64]{1, 2}, sum))
	require.Equal(t, 3.0, aggregator.Fold(values[float64]{1, 2}, sum))
}

// TestOtherDomains runs Sum and Norm2 on decimal and complex data.
func TestOtherDomains(t *testing.T) {
	big := values[decimal.Decimal]{decimal.RequireFromString("0.1"), decimal.RequireFromString("0.2")}
	total := aggregator.Fold(big, aggregator.Sum[decimal.Decimal](scalar.Big{}))
	require.True(t, total.Equal(decimal.RequireFromString("0.3")))

	cx := values[complex128]{3 + 4i}
	require.Equal(t, 5.0, aggregator.Fold(cx, aggregator.Norm2[complex128](scalar.Complex{})))

	rat := values[scalar.Rational]{scalar.NewRational(1, 2), scalar.NewRational(1, 3)}
	require.Equal(t, "5/6", aggregator.Fold(rat, aggregator.Sum[scalar.Rational](scalar.RationalDomain{})).String())
}

// TestOver folds a bare visit function.
func TestOver(t *testing.T) {
	visit := func(f func(float64)) {
		for i := 1; i <= 4; i++ {
			f(float64(i))
		}
	}
	require.Equal(t, 10.0, aggregator.Over(visit, aggregator.Sum[float64](scalar.Primitive{})))
}
