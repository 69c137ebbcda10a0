// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - validateNaNInf controls whether Set/Apply/FromRows reject NaN/Inf.
//   - eps is the default tolerance of AllCloseEps.
//   - segmentSize is handed to the array factory; 0 keeps the cache-derived
//     default.
package matrix

import (
	"math"

	"github.com/katalvlaran/lvarray/array"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by AllCloseEps.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid     = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicSegmentSizeInvalid = "matrix: WithSegmentSize: size must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	segmentSize    int     // 0 => array default
}

// WithEpsilon sets the numeric tolerance eps.
// Panics if eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables finite-only ingestion.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets Set/Apply/FromRows store NaN and ±Inf.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithSegmentSize makes large matrices use segmented storage with n
// elements per segment. Panics if n <= 0.
func WithSegmentSize(n int) Option {
	if n <= 0 {
		panic(panicSegmentSizeInvalid)
	}

	return func(o *Options) { o.segmentSize = n }
}

// gatherOptions applies user options over the defaults in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // last-writer-wins
		}
	}

	return o
}

// factory returns the array factory honoring the storage options.
func (o Options) factory() *array.Factory[float64] {
	if o.segmentSize > 0 {
		return array.Primitive.With(array.WithSegmentSize(o.segmentSize))
	}

	return array.Primitive
}
