// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange indicates a (first, limit, step) triple outside
	// 0 <= first <= limit <= Len(), step >= 1.
	ErrInvalidRange = errors.New("store: invalid range")

	// ErrIndexOutOfRange indicates an exchange cursor outside the store.
	ErrIndexOutOfRange = errors.New("store: index out of range")

	// ErrLengthMismatch indicates a zip source shorter than the touched range.
	ErrLengthMismatch = errors.New("store: source length mismatch")

	// ErrInvalidLength is returned for negative store lengths.
	ErrInvalidLength = errors.New("store: length must be >= 0")
)

// rangeErrorf wraps a sentinel with the method name and the offending triple.
func rangeErrorf(method string, first, limit, step int, err error) error {
	return fmt.Errorf("%s(%d,%d,%d): %w", method, first, limit, step, err)
}
