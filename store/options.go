// SPDX-License-Identifier: MIT

package store

// Option configures a Segmented store. Constructors panic only on
// nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	segmentSize int // 0 => SegmentSize(sizeof(N))
}

const panicSegmentSizeInvalid = "store: WithSegmentSize: size must be > 0"

// WithSegmentSize fixes the number of elements per segment instead of the
// cache-derived default. Mostly useful to exercise boundaries in tests.
func WithSegmentSize(n int) Option {
	if n <= 0 {
		panic(panicSegmentSizeInvalid)
	}

	return func(o *Options) { o.segmentSize = n }
}

func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
