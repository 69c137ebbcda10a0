// SPDX-License-Identifier: MIT

package store

import (
	"math"
	"math/bits"
	"os"
	"strconv"

	"github.com/klauspost/cpuid/v2"
)

// Segment sizing constants. Any positive segment size yields correct results;
// these only shape cache locality.
const (
	// DefaultCacheBytes is the last-level cache estimate used when the CPU
	// reports none and no override is set.
	DefaultCacheBytes int64 = 8 << 20

	// CacheBytesEnv overrides the detected last-level cache size (bytes).
	CacheBytesEnv = "LVARRAY_CACHE_BYTES"

	// arrayOverhead estimates the per-segment slice header plus the *Dense
	// wrapper, in bytes.
	arrayOverhead = 64

	// MinSegmentSize is the floor applied to the derived segment size.
	MinSegmentSize = 1 << 10

	// MaxSegmentSize mirrors the largest 32-bit signed array length.
	MaxSegmentSize = math.MaxInt32
)

// cacheBytes is resolved once at package initialization.
var cacheBytes = resolveCacheBytes()

// resolveCacheBytes prefers the environment override, then the largest cache
// level cpuid reports (L3, else L2), then DefaultCacheBytes.
func resolveCacheBytes() int64 {
	if raw := os.Getenv(CacheBytesEnv); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			return v
		}
	}
	switch {
	case cpuid.CPU.Cache.L3 > 0:
		return int64(cpuid.CPU.Cache.L3)
	case cpuid.CPU.Cache.L2 > 0:
		return int64(cpuid.CPU.Cache.L2)
	}

	return DefaultCacheBytes
}

// CacheBytes returns the last-level cache estimate in bytes.
func CacheBytes() int64 { return cacheBytes }

// SegmentSize derives the number of elements per segment for an element of
// elementSize bytes: the cache estimate divided by twice the per-element
// footprint (doubling is conservative about pointer width), rounded down to
// a power of two and clamped to [MinSegmentSize, MaxSegmentSize].
func SegmentSize(elementSize uintptr) int {
	return segmentSizeFor(cacheBytes, elementSize)
}

func segmentSizeFor(cache int64, elementSize uintptr) int {
	if elementSize == 0 {
		elementSize = 1
	}
	units := (cache - 2*arrayOverhead) / (2 * int64(elementSize))
	if units < MinSegmentSize {
		return MinSegmentSize
	}
	if units > MaxSegmentSize {
		units = MaxSegmentSize
	}
	// round down to a power of two
	size := int64(1) << (bits.Len64(uint64(units)) - 1)

	return int(size)
}
