// SPDX-License-Identifier: MIT

package array

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a negative count or extent, or an empty structure.
	ErrInvalidDimensions = errors.New("array: invalid dimensions")

	// ErrShapeMismatch indicates a shape whose element count differs from the store length.
	ErrShapeMismatch = errors.New("array: shape does not match store length")

	// ErrRawShape indicates a jagged or empty raw [][]float64 input.
	ErrRawShape = errors.New("array: raw data is not rectangular")

	// ErrIndexOutOfRange indicates a logical index or coordinate outside the view.
	ErrIndexOutOfRange = errors.New("array: index out of range")

	// ErrInvalidRange indicates a logical [from, to) range outside the view
	// or a sub-range triple outside the store.
	ErrInvalidRange = errors.New("array: invalid range")

	// ErrLengthMismatch indicates operands of element-wise operations with
	// different counts.
	ErrLengthMismatch = errors.New("array: length mismatch")

	// ErrNilStore indicates a nil backing store.
	ErrNilStore = errors.New("array: nil store")
)

// viewErrorf wraps a sentinel with the view type, method and arguments.
func viewErrorf(method string, args []int, err error) error {
	return fmt.Errorf("%s%v: %w", method, args, err)
}
