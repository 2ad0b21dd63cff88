// SPDX-License-Identifier: MIT
// Package matrix - reference determinant solvers.
//
// These kernels are INDEPENDENT checks for generated fixtures. The fixture
// generators track the determinant analytically and never call them.
//
// Determinism & Policy:
//   - Fixed k→i→j loop order; pivot choice is the first row with the largest
//     magnitude (ties resolved by the smallest index).
//   - Inputs are never mutated; every kernel works on a private copy.

package matrix

import (
	"fmt"
	"math"
	"math/big"
)

const (
	opDetBareiss = "DetBareiss"
	opDetLU      = "DetLU"
	opDetRat     = "DetRat"
)

// DetBareiss computes the exact determinant of an integer matrix with the
// fraction-free Bareiss elimination over math/big.
//
// Implementation:
//   - Stage 1: lift entries to *big.Int.
//   - Stage 2: for each k, pivot on a non-zero entry (swap flips the sign),
//     then update the trailing block with the exact division by the previous pivot.
//   - Stage 3: det = sign · a[n-1][n-1].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: Time O(n³) big-int ops, Space O(n²).
func DetBareiss(m *Dense[int64]) (*big.Int, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opDetBareiss, ErrNilMatrix)
	}
	n := m.n
	a := make([][]*big.Int, n)
	var i, j, k int
	for i = 0; i < n; i++ {
		a[i] = make([]*big.Int, n)
		for j = 0; j < n; j++ {
			a[i][j] = big.NewInt(m.data[i*n+j])
		}
	}

	negate := false
	prev := big.NewInt(1)
	var t1, t2 big.Int
	for k = 0; k < n-1; k++ {
		if a[k][k].Sign() == 0 {
			p := -1
			for i = k + 1; i < n; i++ {
				if a[i][k].Sign() != 0 {
					p = i
					break
				}
			}
			if p < 0 {
				// Whole column below the diagonal is zero: singular.
				return new(big.Int), nil
			}
			a[k], a[p] = a[p], a[k]
			negate = !negate
		}
		for i = k + 1; i < n; i++ {
			for j = k + 1; j < n; j++ {
				t1.Mul(a[i][j], a[k][k])
				t2.Mul(a[i][k], a[k][j])
				t1.Sub(&t1, &t2)
				a[i][j] = new(big.Int).Quo(&t1, prev) // exact by Sylvester's identity
			}
		}
		prev = a[k][k]
	}

	det := new(big.Int).Set(a[n-1][n-1])
	if negate {
		det.Neg(det)
	}

	return det, nil
}

// DetLU computes the determinant of a float matrix with Gaussian elimination
// and partial pivoting (row swaps flip the sign, det = ±∏ pivots).
//
// A column whose remaining entries are all exactly zero yields 0, not an error.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: Time O(n³), Space O(n²).
func DetLU(m *Dense[float64]) (float64, error) {
	if m == nil {
		return 0, fmt.Errorf("%s: %w", opDetLU, ErrNilMatrix)
	}
	n := m.n
	a := make([]float64, len(m.data))
	copy(a, m.data)

	det := 1.0
	var (
		i, j, k, p int
		best, f    float64
	)
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == 0 {
			return 0, nil
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			det = -det
		}
		det *= a[k*n+k]
		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / a[k*n+k]
			for j = k; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	return det, nil
}

// DetRat computes the exact determinant of a rational matrix with Gaussian
// elimination over *big.Rat. Decimal fixtures parse exactly into rationals,
// so this checks float fixtures without any tolerance.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or not square.
//   - ErrNilMatrix for a nil entry.
//
// Complexity: Time O(n³) rational ops, Space O(n²).
func DetRat(rows [][]*big.Rat) (*big.Rat, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%s: n=0: %w", opDetRat, ErrInvalidDimensions)
	}
	a := make([][]*big.Rat, n)
	var i, j, k int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", opDetRat, i, len(rows[i]), n, ErrInvalidDimensions)
		}
		a[i] = make([]*big.Rat, n)
		for j = 0; j < n; j++ {
			if rows[i][j] == nil {
				return nil, fmt.Errorf("%s: entry (%d,%d): %w", opDetRat, i, j, ErrNilMatrix)
			}
			a[i][j] = new(big.Rat).Set(rows[i][j])
		}
	}

	det := big.NewRat(1, 1)
	var f, t big.Rat
	for k = 0; k < n; k++ {
		p := -1
		for i = k; i < n; i++ {
			if a[i][k].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			return new(big.Rat), nil
		}
		if p != k {
			a[k], a[p] = a[p], a[k]
			det.Neg(det)
		}
		det.Mul(det, a[k][k])
		for i = k + 1; i < n; i++ {
			if a[i][k].Sign() == 0 {
				continue
			}
			f.Quo(a[i][k], a[k][k])
			for j = k; j < n; j++ {
				t.Mul(&f, a[k][j])
				a[i][j].Sub(a[i][j], &t)
			}
		}
	}

	return det, nil
}
