// SPDX-License-Identifier: MIT

// Package scalar defines the numeric domains stored by lvarray.
//
// A domain is a small stateless value implementing Domain[N] for one element
// representation N:
//
//	Primitive - float64
//	Big       - decimal.Decimal (arbitrary precision, shopspring/decimal)
//	Complex   - complex128
//	RationalDomain - Rational (int64 numerator/denominator pair)
//
// Stores and views never manipulate raw slots with their own arithmetic:
// every comparison, magnitude and conversion goes through the domain, so a
// fifth representation only needs a new Domain implementation.
//
// Scalar[N] wraps one value together with its domain and is what
// store.Store.ToScalar hands out.
package scalar
