// SPDX-License-Identifier: MIT

package scalar

import "errors"

var (
	// ErrDivisionByZero is raised (as a panic value) when a rational value is
	// built or divided with a zero denominator.
	ErrDivisionByZero = errors.New("scalar: division by zero")
)
