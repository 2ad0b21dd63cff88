// SPDX-License-Identifier: MIT
// Package: detgen
//
// tracker.go — DeterminantTracker.

package detgen

import "github.com/katalvlaran/fixturegen/matrix"

// Tracker holds the running determinant of a matrix being scrambled.
// It is multiplied by −1 on every swap and untouched by row additions.
// It is never recomputed from the matrix.
type Tracker[T matrix.Element] struct {
	value T
	swaps int
}

// NewTracker starts tracking from the known determinant det.
func NewTracker[T matrix.Element](det T) *Tracker[T] {
	return &Tracker[T]{value: det}
}

// Value returns the current determinant.
func (t *Tracker[T]) Value() T { return t.value }

// Swaps returns how many sign flips were observed.
func (t *Tracker[T]) Swaps() int { return t.swaps }

// Observe updates the determinant for an operation already applied to the matrix.
//
// Errors:
//   - ErrOverflow when negating math.MinInt64.
func (t *Tracker[T]) Observe(op TransformOp) error {
	if op.Kind != OpSwapRows {
		return nil
	}
	v, ok := matrix.CheckedNeg(t.value)
	if !ok {
		return ErrOverflow
	}
	t.value = v
	t.swaps++

	return nil
}
