// SPDX-License-Identifier: MIT

package scalar

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// maxApproxDenominator bounds the continued-fraction expansion used when a
// float64 has no exact int64/int64 form.
const maxApproxDenominator = 1 << 32

// Rational is an exact fraction num/den held as two int64 values.
//
// Values are kept reduced with den > 0. The zero value is 0/1. Arithmetic
// does not check for int64 overflow.
type Rational struct {
	num int64
	den int64 // 0 only in the zero value, read as 1
}

// NewRational returns num/den in lowest terms. It panics with
// ErrDivisionByZero when den == 0.
func NewRational(num, den int64) Rational {
	if den == 0 {
		panic(fmt.Errorf("NewRational(%d,%d): %w", num, den, ErrDivisionByZero))
	}

	return normalize(num, den)
}

// RationalOf returns the integer v as v/1.
func RationalOf(v int64) Rational { return Rational{num: v, den: 1} }

// RationalFromFloat converts f exactly when both parts fit in int64, and
// otherwise returns the closest continued-fraction convergent with a
// denominator up to 2^32. NaN and ±Inf map to zero.
func RationalFromFloat(f float64) Rational {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}
	}
	r := new(big.Rat).SetFloat64(f)
	if r.Num().IsInt64() && r.Denom().IsInt64() {
		return normalize(r.Num().Int64(), r.Denom().Int64())
	}

	return approximate(f)
}

// approximate walks the continued fraction of f until the next convergent
// would exceed maxApproxDenominator.
func approximate(f float64) Rational {
	neg := f < 0
	if neg {
		f = -f
	}
	if f >= math.MaxInt64 {
		if neg {
			return Rational{num: -math.MaxInt64, den: 1}
		}

		return Rational{num: math.MaxInt64, den: 1}
	}

	var h0, h1 int64 = 0, 1
	var k0, k1 int64 = 1, 0
	x := f
	for i := 0; i < 64; i++ {
		a := math.Floor(x)
		if a > maxApproxDenominator {
			break
		}
		ai := int64(a)
		h2 := ai*h1 + h0
		k2 := ai*k1 + k0
		if k2 > maxApproxDenominator || h2 < 0 || k2 < 0 {
			break
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2
		frac := x - a
		if frac == 0 {
			break
		}
		x = 1 / frac
	}
	if k1 == 0 {
		return Rational{}
	}
	if neg {
		h1 = -h1
	}

	return normalize(h1, k1)
}

func normalize(num, den int64) Rational {
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Rational{num: 0, den: 1}
	}
	if g := gcd(num, den); g > 1 {
		num /= g
		den /= g
	}

	return Rational{num: num, den: den}
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Numerator returns the reduced numerator.
func (r Rational) Numerator() int64 { return r.num }

// Denominator returns the reduced, positive denominator.
func (r Rational) Denominator() int64 {
	if r.den == 0 {
		return 1
	}

	return r.den
}

// Float64 returns the nearest float64.
func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.Denominator())
}

func (r Rational) Add(o Rational) Rational {
	b, d := r.Denominator(), o.Denominator()
	g := gcd(b, d)

	return normalize(r.num*(d/g)+o.num*(b/g), b/g*d)
}

func (r Rational) Subtract(o Rational) Rational { return r.Add(o.Negate()) }

func (r Rational) Multiply(o Rational) Rational {
	// cross-reduce first to keep intermediates small
	g1 := gcd(r.num, o.Denominator())
	g2 := gcd(o.num, r.Denominator())

	return normalize((r.num/g1)*(o.num/g2), (r.Denominator()/g2)*(o.Denominator()/g1))
}

// Divide panics with ErrDivisionByZero when o is zero.
func (r Rational) Divide(o Rational) Rational {
	if o.num == 0 {
		panic(fmt.Errorf("Rational.Divide(%s,%s): %w", r, o, ErrDivisionByZero))
	}

	return r.Multiply(Rational{num: o.Denominator(), den: o.num}.reduced())
}

func (r Rational) reduced() Rational { return normalize(r.num, r.den) }

func (r Rational) Negate() Rational { return Rational{num: -r.num, den: r.Denominator()} }

func (r Rational) Abs() Rational {
	if r.num < 0 {
		return r.Negate()
	}

	return Rational{num: r.num, den: r.Denominator()}
}

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	}

	return 0
}

// Cmp compares exactly using 128-bit cross products.
func (r Rational) Cmp(o Rational) int {
	if r.Denominator() == o.Denominator() {
		return cmpInt64(r.num, o.num)
	}
	left := new(big.Int).Mul(big.NewInt(r.num), big.NewInt(o.Denominator()))
	right := new(big.Int).Mul(big.NewInt(o.num), big.NewInt(r.Denominator()))

	return left.Cmp(right)
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

func (r Rational) IsZero() bool { return r.num == 0 }

// String renders "num/den", or just "num" for integers.
func (r Rational) String() string {
	if r.Denominator() == 1 {
		return strconv.FormatInt(r.num, 10)
	}

	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.den, 10)
}

// RationalDomain is the Domain for Rational values.
type RationalDomain struct{}

func (RationalDomain) Name() string { return "rational" }

func (RationalDomain) Zero() Rational { return Rational{num: 0, den: 1} }
func (RationalDomain) One() Rational  { return Rational{num: 1, den: 1} }

func (RationalDomain) FromFloat(f float64) Rational { return RationalFromFloat(f) }
func (RationalDomain) Float(v Rational) float64     { return v.Float64() }

func (RationalDomain) Add(a, b Rational) Rational      { return a.Add(b) }
func (RationalDomain) Subtract(a, b Rational) Rational { return a.Subtract(b) }
func (RationalDomain) Multiply(a, b Rational) Rational { return a.Multiply(b) }
func (RationalDomain) Divide(a, b Rational) Rational   { return a.Divide(b) }
func (RationalDomain) Negate(v Rational) Rational      { return v.Negate() }

func (RationalDomain) Magnitude(v Rational) float64 { return math.Abs(v.Float64()) }

func (RationalDomain) Compare(a, b Rational) int { return a.Cmp(b) }

// Equal relies on the reduced form: equal fractions share num and den.
func (RationalDomain) Equal(a, b Rational) bool {
	return a.num == b.num && a.Denominator() == b.Denominator()
}

func (RationalDomain) IsZero(v Rational) bool     { return v.num == 0 }
func (RationalDomain) IsAbsolute(v Rational) bool { return v.num >= 0 }
func (RationalDomain) IsPositive(v Rational) bool { return v.num > 0 }
func (RationalDomain) IsReal(Rational) bool       { return true }

func (RationalDomain) Format(v Rational) string { return v.String() }

func (RationalDomain) AppendHash(dst []byte, v Rational) []byte {
	dst = binary.LittleEndian.AppendUint64(dst, uint64(v.num))

	return binary.LittleEndian.AppendUint64(dst, uint64(v.Denominator()))
}
