// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set: O(1); Clone: O(n²); Rows: O(n²).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"           // method tag used in error wrappers
	ctxSet      = "Set"          // method tag used in error wrappers
	ctxRow      = "Row"          // method tag used in error wrappers
	ctxSwap     = "SwapRows"     // method tag used in error wrappers
	ctxAddRow   = "AddScaledRow" // method tag used in error wrappers
	ctxFromRows = "FromRows"     // ctor tag
	ctxDiagonal = "NewDiagonal"  // ctor tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Element is the set of numeric domains a fixture matrix can hold.
// The set is closed on purpose: checked arithmetic switches on it.
type Element interface {
	int64 | float64
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Produces "Dense.<method>(row,col): <sentinel>" and keeps the sentinel for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete square row-major matrix.
//   - n holds the dimension (rows == cols == n).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Dense[T Element] struct {
	n    int
	data []T
}

// Compile-time assertion for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Dense[int64])(nil)
	_ fmt.Stringer = (*Dense[float64])(nil)
)

// NewDense creates an n×n zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//
// Complexity: Time O(n²), Space O(n²).
func NewDense[T Element](n int) (*Dense[T], error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	return &Dense[T]{n: n, data: make([]T, n*n)}, nil
}

// NewDiagonal builds diag(d): d[i] on the diagonal, zero elsewhere.
// The input slice is copied; later changes to d do not leak into the matrix.
//
// Errors:
//   - ErrInvalidDimensions when len(d) == 0.
//
// Complexity: Time O(n²), Space O(n²).
func NewDiagonal[T Element](d []T) (*Dense[T], error) {
	m, err := NewDense[T](len(d))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxDiagonal, err)
	}
	var i int
	for i = 0; i < m.n; i++ {
		m.data[i*m.n+i] = d[i]
	}

	return m, nil
}

// FromRows copies a square [][]T into a new Dense.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or any row length differs from len(rows).
//
// Complexity: Time O(n²), Space O(n²).
func FromRows[T Element](rows [][]T) (*Dense[T], error) {
	n := len(rows)
	m, err := NewDense[T](n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}
	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w",
				ctxFromRows, i, len(rows[i]), n, ErrInvalidDimensions)
		}
		copy(m.data[i*n:(i+1)*n], rows[i])
	}

	return m, nil
}

// Size returns n for an n×n matrix.
// Complexity: O(1).
func (m *Dense[T]) Size() int { return m.n }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*n + j.
	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the sentinel wrapped with coordinates.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(n).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.n {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// Rows returns a deep [][]T copy of the matrix, row by row.
// Handy for table tests and formatting; not for hot paths.
// Complexity: O(n²).
func (m *Dense[T]) Rows() [][]T {
	out := make([][]T, m.n)
	var i int
	for i = 0; i < m.n; i++ {
		out[i] = make([]T, m.n)
		copy(out[i], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// Clone returns a deep copy (new buffer).
// Complexity: O(n²).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{n: m.n, data: cp}
}

// IsDiagonal reports whether every off-diagonal entry is exactly zero.
// Complexity: O(n²).
func (m *Dense[T]) IsDiagonal() bool {
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if i != j && m.data[i*m.n+j] != 0 {
				return false
			}
		}
	}

	return true
}

// String is a human-readable dump of rows for diagnostics.
// Not for hot paths; intended for logs and test failures.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.n
		for j = 0; j < m.n; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
