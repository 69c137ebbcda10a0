// SPDX-License-Identifier: MIT

package scalar

// Scalar is one value of domain N paired with the domain that interprets it.
// It is an immutable value type: every operation returns a new Scalar.
type Scalar[N any] struct {
	value  N
	domain Domain[N]
}

// Of wraps v.
func Of[N any](d Domain[N], v N) Scalar[N] {
	return Scalar[N]{value: v, domain: d}
}

// Get returns the raw value.
func (s Scalar[N]) Get() N { return s.value }

// Domain returns the interpreting domain.
func (s Scalar[N]) Domain() Domain[N] { return s.domain }

func (s Scalar[N]) Float64() float64   { return s.domain.Float(s.value) }
func (s Scalar[N]) Magnitude() float64 { return s.domain.Magnitude(s.value) }

func (s Scalar[N]) Add(o N) Scalar[N]      { return Of(s.domain, s.domain.Add(s.value, o)) }
func (s Scalar[N]) Subtract(o N) Scalar[N] { return Of(s.domain, s.domain.Subtract(s.value, o)) }
func (s Scalar[N]) Multiply(o N) Scalar[N] { return Of(s.domain, s.domain.Multiply(s.value, o)) }
func (s Scalar[N]) Divide(o N) Scalar[N]   { return Of(s.domain, s.domain.Divide(s.value, o)) }
func (s Scalar[N]) Negate() Scalar[N]      { return Of(s.domain, s.domain.Negate(s.value)) }

func (s Scalar[N]) Compare(o N) int { return s.domain.Compare(s.value, o) }
func (s Scalar[N]) Equal(o N) bool  { return s.domain.Equal(s.value, o) }

func (s Scalar[N]) IsZero() bool     { return s.domain.IsZero(s.value) }
func (s Scalar[N]) IsAbsolute() bool { return s.domain.IsAbsolute(s.value) }
func (s Scalar[N]) IsPositive() bool { return s.domain.IsPositive(s.value) }
func (s Scalar[N]) IsReal() bool     { return s.domain.IsReal(s.value) }

// String implements fmt.Stringer.
func (s Scalar[N]) String() string { return s.domain.Format(s.value) }
