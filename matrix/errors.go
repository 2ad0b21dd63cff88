// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported operations return these sentinels (possibly wrapped with a
// method tag via %w). Tests and callers MUST branch with errors.Is.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> dimensions -> index -> same-row / sign -> overflow.

var (
	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidDimensions indicates that the requested size is non-positive
	// or that row data does not form a square matrix.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0 and square")

	// ErrOutOfRange indicates that a row or column index is outside [0,n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSameRow is returned by row operations that require two distinct rows.
	ErrSameRow = errors.New("matrix: row operation needs two distinct rows")

	// ErrBadSign is returned by AddScaledRow when the coefficient is not ±1.
	ErrBadSign = errors.New("matrix: row coefficient must be -1 or +1")

	// ErrOverflow signals int64 overflow or a non-finite float result.
	// Row operations check every entry before writing, so a failed call
	// leaves the matrix untouched.
	ErrOverflow = errors.New("matrix: arithmetic overflow")
)
