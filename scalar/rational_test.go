package scalar_test

import (
	"testing"

	"github.com/katalvlaran/lvarray/scalar"
	"github.com/stretchr/testify/require"
)

// TestNewRationalReduces checks lowest terms and sign normalization.
func TestNewRationalReduces(t *testing.T) {
	r := scalar.NewRational(6, -8)
	require.Equal(t, int64(-3), r.Numerator())
	require.Equal(t, int64(4), r.Denominator())
	require.Equal(t, "-3/4", r.String())

	require.Equal(t, "0", scalar.NewRational(0, -5).String()) // zero normalizes to 0/1
	require.Equal(t, "7", scalar.RationalOf(7).String())
}

// TestNewRationalZeroDenominator ensures the constructor panics with the sentinel.
func TestNewRationalZeroDenominator(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		require.ErrorIs(t, err, scalar.ErrDivisionByZero)
	}()
	_ = scalar.NewRational(1, 0)
}

// TestRationalArithmetic covers the four operations used by aggregators.
func TestRationalArithmetic(t *testing.T) {
	half := scalar.NewRational(1, 2)
	third := scalar.NewRational(1, 3)

	require.Equal(t, "5/6", half.Add(third).String())
	require.Equal(t, "1/6", half.Subtract(third).String())
	require.Equal(t, "1/6", half.Multiply(third).String())
	require.Equal(t, "3/2", half.Divide(third).String())
	require.Equal(t, "-1/2", half.Negate().String())
	require.Equal(t, "1/2", half.Negate().Abs().String())

	require.Equal(t, 1, half.Cmp(third))
	require.Equal(t, -1, third.Cmp(half))
	require.Equal(t, 0, half.Cmp(scalar.NewRational(2, 4)))
}

// TestRationalZeroValue verifies the zero value reads as 0/1.
func TestRationalZeroValue(t *testing.T) {
	var r scalar.Rational
	require.True(t, r.IsZero())
	require.Equal(t, int64(1), r.Denominator())
	require.Equal(t, "1/3", r.Add(scalar.NewRational(1, 3)).String())
	require.True(t, scalar.RationalDomain{}.Equal(r, scalar.RationalDomain{}.Zero()))
}

// TestRationalFromFloat covers exact, approximated and non-finite conversions.
func TestRationalFromFloat(t *testing.T) {
	require.Equal(t, "1/4", scalar.RationalFromFloat(0.25).String())
	require.Equal(t, "-3", scalar.RationalFromFloat(-3).String())
	require.Equal(t, "0", scalar.RationalFromFloat(0).String())

	// 0.1 is exact in binary only with a 2^55 denominator, which still fits int64.
	tenth := scalar.RationalFromFloat(0.1)
	require.InDelta(t, 0.1, tenth.Float64(), 1e-17)

	// 1e-30 needs a denominator beyond int64: falls back to a convergent.
	tiny := scalar.RationalFromFloat(1e-30)
	require.LessOrEqual(t, tiny.Denominator(), int64(1<<32))

	big := scalar.RationalFromFloat(1e300)
	require.Equal(t, int64(1), big.Denominator())
	require.Positive(t, big.Numerator())
}

// TestRationalDivideByZero ensures Divide panics with the sentinel.
func TestRationalDivideByZero(t *testing.T) {
	require.PanicsWithError(t, "Rational.Divide(1,0): scalar: division by zero", func() {
		_ = scalar.RationalOf(1).Divide(scalar.Rational{})
	})
}
