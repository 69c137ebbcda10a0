// SPDX-License-Identifier: MIT

// Package store holds the flat backing buffers that every lvarray view
// projects onto.
//
// Two implementations share the Store[N] contract:
//
//   - Dense[N]: one contiguous []N. Instantiated once per scalar domain
//     (NewPrimitive, NewBig, NewComplex, NewRational); the compiler
//     specializes the loops per element type.
//   - Segmented[N]: a logical buffer split into fixed-size Dense chunks of
//     S elements, S derived from the last-level cache size (SegmentSize).
//
// Every bulk operation takes a (first, limit, step) triple in store
// coordinates and touches first, first+step, ... while < limit. Element
// accessors index the store directly.
//
// Stores are not safe for concurrent mutation; callers serialize access.
// Precondition violations (bad triple, short zip source) panic with an
// error wrapping one of the sentinels in errors.go before any slot is
// written.
package store
