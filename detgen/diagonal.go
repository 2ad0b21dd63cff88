// SPDX-License-Identifier: MIT
// Package: detgen
//
// diagonal.go — RandomDiagonalMatrixBuilder.
//
// Contract:
//   - spec validated before any draw (ErrInvalidRange).
//   - rng non-nil (ErrNeedRandSource).
//   - n ~ U[Size.Min, Size.Max); diagonal ~ U[Values.Min, Values.Max) per Sampling.
//   - float diagonals of a Generator lie on the printed decimal grid.
//   - det = ∏ diagonal, computed with checked multiplication (ErrOverflow).
//
// Determinism:
//   - Draw order is fixed: n first, then d_0..d_{n-1}.

package detgen

import (
	"math/rand"

	"github.com/katalvlaran/fixturegen/matrix"
)

// BuildDiagonal returns a random diagonal matrix and its exact determinant.
//
// Complexity: Time O(n²) (zeroed allocation), Space O(n²).
func BuildDiagonal[T matrix.Element](rng *rand.Rand, spec DiagonalSpec[T]) (*matrix.Dense[T], T, error) {
	return buildDiagonal(rng, spec, noGrid)
}

// buildDiagonal is BuildDiagonal with float draws snapped to the
// 10^-decimals grid; noGrid keeps full resolution.
func buildDiagonal[T matrix.Element](rng *rand.Rand, spec DiagonalSpec[T], decimals int) (*matrix.Dense[T], T, error) {
	var zero T
	if err := spec.Validate(); err != nil {
		return nil, zero, detgenErrorf(methodBuildDiagonal, err, "spec")
	}
	if rng == nil {
		return nil, zero, detgenErrorf(methodBuildDiagonal, ErrNeedRandSource, "rng")
	}

	n := drawCount(rng, spec.Size)
	diag, err := drawValues(rng, spec.Values, n, spec.Sampling, decimals)
	if err != nil {
		return nil, zero, detgenErrorf(methodBuildDiagonal, err, "values")
	}

	det, err := product(diag)
	if err != nil {
		return nil, zero, detgenErrorf(methodBuildDiagonal, err, "det of %v", diag)
	}
	m, err := matrix.NewDiagonal(diag)
	if err != nil {
		return nil, zero, detgenErrorf(methodBuildDiagonal, err, "n=%d", n)
	}

	return m, det, nil
}

// product returns ∏ d with overflow detection.
func product[T matrix.Element](d []T) (T, error) {
	var (
		acc T = 1
		ok  bool
	)
	for _, v := range d {
		if acc, ok = matrix.CheckedMul(acc, v); !ok {
			return acc, ErrOverflow
		}
	}

	return acc, nil
}
