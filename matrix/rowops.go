// SPDX-License-Identifier: MIT
// Package matrix - elementary row operations.
//
// Determinant effect (the only reason these exist):
//   - SwapRows(i,j), i≠j          → det' = −det
//   - AddScaledRow(dst,src,±1)    → det' =  det
//
// Both operations address ROWS only; columns are never permuted or combined.
// Both validate fully before mutating, so an error leaves m unchanged.

package matrix

import "fmt"

// rowPairErr validates that i and j are distinct in-range row indices.
func (m *Dense[T]) rowPairErr(method string, i, j int) error {
	if m == nil {
		return fmt.Errorf("Dense.%s: %w", method, ErrNilMatrix)
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return denseErrorf(method, i, j, ErrOutOfRange)
	}
	if i == j {
		return denseErrorf(method, i, j, ErrSameRow)
	}

	return nil
}

// SwapRows exchanges rows i and j entirely.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrSameRow.
//
// Complexity: Time O(n), Space O(1).
func (m *Dense[T]) SwapRows(i, j int) error {
	if err := m.rowPairErr(ctxSwap, i, j); err != nil {
		return err
	}
	bi, bj := i*m.n, j*m.n
	var k int
	for k = 0; k < m.n; k++ {
		m.data[bi+k], m.data[bj+k] = m.data[bj+k], m.data[bi+k]
	}

	return nil
}

// AddScaledRow performs row[dst] ← row[dst] + sign·row[src] with sign ∈ {−1,+1}.
//
// Implementation:
//   - Stage 1: validate (dst,src) and sign.
//   - Stage 2: compute the new row into a scratch buffer with checked arithmetic.
//   - Stage 3: commit the scratch buffer.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrSameRow, ErrBadSign, ErrOverflow.
//
// Complexity: Time O(n), Space O(n).
func (m *Dense[T]) AddScaledRow(dst, src, sign int) error {
	if err := m.rowPairErr(ctxAddRow, dst, src); err != nil {
		return err
	}
	if sign != 1 && sign != -1 {
		return fmt.Errorf("Dense.%s: sign=%d: %w", ctxAddRow, sign, ErrBadSign)
	}

	bd, bs := dst*m.n, src*m.n
	next := make([]T, m.n)
	var (
		k  int
		v  T
		ok bool
	)
	for k = 0; k < m.n; k++ {
		if sign > 0 {
			v, ok = CheckedAdd(m.data[bd+k], m.data[bs+k])
		} else {
			v, ok = CheckedSub(m.data[bd+k], m.data[bs+k])
		}
		if !ok {
			return denseErrorf(ctxAddRow, dst, k, ErrOverflow)
		}
		next[k] = v
	}
	copy(m.data[bd:bd+m.n], next)

	return nil
}
