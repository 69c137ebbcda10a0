// SPDX-License-Identifier: MIT

package scalar

import (
	"encoding/binary"
	"math/cmplx"
	"strconv"
)

// Complex is the complex128 domain.
//
// Compare orders lexicographically on (real, imaginary); it is a storage
// order for sorting and searching, not a mathematical one.
type Complex struct{}

func (Complex) Name() string { return "complex" }

func (Complex) Zero() complex128 { return 0 }
func (Complex) One() complex128  { return 1 }

func (Complex) FromFloat(f float64) complex128 { return complex(f, 0) }

// Float returns the real part.
func (Complex) Float(v complex128) float64 { return real(v) }

func (Complex) Add(a, b complex128) complex128      { return a + b }
func (Complex) Subtract(a, b complex128) complex128 { return a - b }
func (Complex) Multiply(a, b complex128) complex128 { return a * b }
func (Complex) Divide(a, b complex128) complex128   { return a / b }
func (Complex) Negate(v complex128) complex128      { return -v }

// Magnitude is the modulus.
func (Complex) Magnitude(v complex128) float64 { return cmplx.Abs(v) }

func (Complex) Compare(a, b complex128) int {
	if c := (Primitive{}).Compare(real(a), real(b)); c != 0 {
		return c
	}

	return Primitive{}.Compare(imag(a), imag(b))
}

func (Complex) Equal(a, b complex128) bool { return a == b }

func (Complex) IsZero(v complex128) bool { return v == 0 }

func (Complex) IsAbsolute(v complex128) bool { return imag(v) == 0 && real(v) >= 0 }
func (Complex) IsPositive(v complex128) bool { return imag(v) == 0 && real(v) > 0 }
func (Complex) IsReal(v complex128) bool     { return imag(v) == 0 }

func (Complex) Format(v complex128) string { return strconv.FormatComplex(v, 'g', -1, 128) }

func (Complex) AppendHash(dst []byte, v complex128) []byte {
	dst = binary.LittleEndian.AppendUint64(dst, floatBits(real(v)))

	return binary.LittleEndian.AppendUint64(dst, floatBits(imag(v)))
}
