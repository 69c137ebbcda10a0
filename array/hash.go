// SPDX-License-Identifier: MIT

package array

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvarray/scalar"
)

// hasher streams a view's shape and values into xxhash using the domain's
// canonical encoding, so values that compare Equal hash alike.
type hasher[N any] struct {
	digest *xxhash.Digest
	domain scalar.Domain[N]
	buf    []byte
}

func newHasher[N any](d scalar.Domain[N]) *hasher[N] {
	return &hasher[N]{digest: xxhash.New(), domain: d, buf: make([]byte, 0, 32)}
}

// ints writes shape information.
func (h *hasher[N]) ints(values ...int) {
	h.buf = h.buf[:0]
	for _, v := range values {
		h.buf = binary.AppendUvarint(h.buf, uint64(v))
	}
	_, _ = h.digest.Write(h.buf)
}

// value writes one element; it has the visitor signature.
func (h *hasher[N]) value(v N) {
	h.buf = h.domain.AppendHash(h.buf[:0], v)
	_, _ = h.digest.Write(h.buf)
}

func (h *hasher[N]) sum() uint64 { return h.digest.Sum64() }
