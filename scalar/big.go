// SPDX-License-Identifier: MIT

package scalar

import (
	"encoding/binary"
	"math"

	"github.com/shopspring/decimal"
)

// Big is the arbitrary-precision decimal domain backed by shopspring/decimal.
//
// Division uses decimal.DivisionPrecision fractional digits. Conversions to
// float64 are inexact by nature.
type Big struct{}

func (Big) Name() string { return "big" }

func (Big) Zero() decimal.Decimal { return decimal.Zero }
func (Big) One() decimal.Decimal  { return decimal.NewFromInt(1) }

// FromFloat returns the shortest decimal that round-trips to f.
// NaN and ±Inf have no decimal form and map to zero.
func (Big) FromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}

	return decimal.NewFromFloat(f)
}

func (Big) Float(v decimal.Decimal) float64 { return v.InexactFloat64() }

func (Big) Add(a, b decimal.Decimal) decimal.Decimal      { return a.Add(b) }
func (Big) Subtract(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }
func (Big) Multiply(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }
func (Big) Divide(a, b decimal.Decimal) decimal.Decimal   { return a.Div(b) }
func (Big) Negate(v decimal.Decimal) decimal.Decimal      { return v.Neg() }

func (Big) Magnitude(v decimal.Decimal) float64 { return v.Abs().InexactFloat64() }

func (Big) Compare(a, b decimal.Decimal) int  { return a.Cmp(b) }
func (Big) Equal(a, b decimal.Decimal) bool   { return a.Equal(b) }
func (Big) IsZero(v decimal.Decimal) bool     { return v.IsZero() }
func (Big) IsAbsolute(v decimal.Decimal) bool { return v.Sign() >= 0 }
func (Big) IsPositive(v decimal.Decimal) bool { return v.Sign() > 0 }
func (Big) IsReal(decimal.Decimal) bool       { return true }

func (Big) Format(v decimal.Decimal) string { return v.String() }

// AppendHash goes through the nearest float64: equal decimals with different
// exponents (1.0 vs 1) must hash alike. Collisions between nearby values are
// acceptable for a hash.
func (Big) AppendHash(dst []byte, v decimal.Decimal) []byte {
	return binary.LittleEndian.AppendUint64(dst, floatBits(v.InexactFloat64()))
}
