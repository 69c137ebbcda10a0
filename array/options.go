// SPDX-License-Identifier: MIT

// Package array: functional configuration of factories. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions helper (internal).
//
// Notes:
//   - Segmentation is a storage decision only; every operation behaves the
//     same on Dense and Segmented stores.
//   - The threshold defaults to the segment size, so a store is split only
//     when it needs more than one segment.
package array

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSegmentation lets factories switch to a segmented store for
	// allocations larger than the threshold.
	DefaultSegmentation = true

	// DefaultSegmentSize 0 ⇒ store.SegmentSize(sizeof(N)) derived from the
	// cache estimate.
	DefaultSegmentSize = 0

	// DefaultSegmentationThreshold 0 ⇒ the effective segment size.
	DefaultSegmentationThreshold = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSegmentSizeInvalid = "array: WithSegmentSize: size must be > 0"
	panicThresholdInvalid   = "array: WithSegmentationThreshold: threshold must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates factory options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective factory configuration.
type Options struct {
	segmentation bool // DefaultSegmentation
	segmentSize  int  // DefaultSegmentSize
	threshold    int  // DefaultSegmentationThreshold
}

// WithSegmentation enables or disables segmented allocation.
func WithSegmentation(enabled bool) Option {
	return func(o *Options) { o.segmentation = enabled }
}

// WithSegmentSize fixes the elements per segment of segmented stores.
// Panics if n <= 0.
func WithSegmentSize(n int) Option {
	if n <= 0 {
		panic(panicSegmentSizeInvalid)
	}

	return func(o *Options) { o.segmentSize = n }
}

// WithSegmentationThreshold sets the element count above which factories
// allocate a segmented store. Panics if n < 0.
func WithSegmentationThreshold(n int) Option {
	if n < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = n }
}

func defaultOptions() Options {
	return Options{
		segmentation: DefaultSegmentation,
		segmentSize:  DefaultSegmentSize,
		threshold:    DefaultSegmentationThreshold,
	}
}

// gatherOptions applies opts over base in order; nil options are skipped.
func gatherOptions(base Options, opts ...Option) Options {
	o := base
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
