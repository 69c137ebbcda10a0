// SPDX-License-Identifier: MIT

package scalar

import "github.com/shopspring/decimal"

// Domain is the arithmetic and classification surface of one numeric
// representation N. Implementations are stateless and safe to copy.
//
// Only what the storage engine needs lives here: conversions to and from
// float64, the four basic operations (used by modify functions and
// aggregators), a total order for sorting, a magnitude for
// index-of-largest searches and the predicates exposed by stores.
type Domain[N any] interface {
	// Name is a short human-readable label ("primitive", "big", ...).
	Name() string

	Zero() N
	One() N

	// FromFloat converts a float64 into the domain.
	FromFloat(f float64) N
	// Float converts a value into float64; lossy for Big, Complex and Rational.
	Float(v N) float64

	Add(a, b N) N
	Subtract(a, b N) N
	Multiply(a, b N) N
	Divide(a, b N) N
	Negate(v N) N

	// Magnitude is |v| as a float64: absolute value for real domains,
	// modulus for Complex.
	Magnitude(v N) float64

	// Compare imposes a total order: -1, 0 or +1.
	Compare(a, b N) int
	// Equal reports value equality (not representation identity).
	Equal(a, b N) bool

	IsZero(v N) bool
	// IsAbsolute reports v == |v|.
	IsAbsolute(v N) bool
	// IsPositive reports v > 0 (real part for Complex, which must be real).
	IsPositive(v N) bool
	// IsReal reports a zero imaginary part; trivially true for real domains.
	IsReal(v N) bool

	// Format renders v for diagnostics.
	Format(v N) string
	// AppendHash appends a canonical byte encoding of v to dst. Values that
	// are Equal produce identical bytes.
	AppendHash(dst []byte, v N) []byte
}

// Compile-time assertions.
var (
	_ Domain[float64]         = Primitive{}
	_ Domain[decimal.Decimal] = Big{}
	_ Domain[complex128]      = Complex{}
	_ Domain[Rational]        = RationalDomain{}
)
