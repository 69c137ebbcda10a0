// SPDX-License-Identifier: MIT

package scalar

import (
	"encoding/binary"
	"math"
	"strconv"
)

// Primitive is the float64 domain.
type Primitive struct{}

// Name implements Domain.
func (Primitive) Name() string { return "primitive" }

func (Primitive) Zero() float64 { return 0 }
func (Primitive) One() float64  { return 1 }

func (Primitive) FromFloat(f float64) float64 { return f }
func (Primitive) Float(v float64) float64     { return v }

func (Primitive) Add(a, b float64) float64      { return a + b }
func (Primitive) Subtract(a, b float64) float64 { return a - b }
func (Primitive) Multiply(a, b float64) float64 { return a * b }
func (Primitive) Divide(a, b float64) float64   { return a / b }
func (Primitive) Negate(v float64) float64      { return -v }

func (Primitive) Magnitude(v float64) float64 { return math.Abs(v) }

// Compare orders NaN before every other value so sorting stays total.
func (Primitive) Compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	}
	// at least one NaN
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return -1
	default:
		return 1
	}
}

func (Primitive) Equal(a, b float64) bool { return a == b }

func (Primitive) IsZero(v float64) bool     { return v == 0 }
func (Primitive) IsAbsolute(v float64) bool { return v >= 0 }
func (Primitive) IsPositive(v float64) bool { return v > 0 }
func (Primitive) IsReal(float64) bool       { return true }

func (Primitive) Format(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// AppendHash writes the IEEE-754 bits; both zeros hash alike because they compare equal.
func (Primitive) AppendHash(dst []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint64(dst, floatBits(v))
}

// floatBits folds -0 into +0.
func floatBits(v float64) uint64 {
	if v == 0 {
		return 0
	}

	return math.Float64bits(v)
}
