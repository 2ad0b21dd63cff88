// SPDX-License-Identifier: MIT
// Package: detgen
//
// spec.go — read-only generation inputs: ranges and the diagonal sampling policy.
//
// All ranges are HALF-OPEN: [Min, Max). A range with Min >= Max is invalid.

package detgen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fixturegen/matrix"
)

// IntRange is a half-open integer range [Min, Max) used for counts
// (matrix size, number of transforms).
type IntRange struct {
	Min, Max int
}

// Width returns Max-Min. ok is false when the difference overflows int
// (e.g. [math.MinInt, math.MaxInt)).
func (r IntRange) Width() (w int, ok bool) {
	d, ok := matrix.CheckedSub(int64(r.Max), int64(r.Min))
	if !ok || int64(int(d)) != d {
		return 0, false
	}
	return int(d), true
}

// Range is a half-open value range [Min, Max) in the element domain.
type Range[T matrix.Element] struct {
	Min, Max T
}

// Sampling selects how diagonal entries are drawn.
type Sampling uint8

const (
	// SamplingIndependent draws every diagonal entry independently (with
	// replacement). Repeats are possible; so is det == 0 when 0 ∈ [Min,Max).
	SamplingIndependent Sampling = iota
	// SamplingDistinct draws diagonal entries without replacement.
	SamplingDistinct
)

const (
	samplingIndependentName = "independent"
	samplingDistinctName    = "distinct"
)

// String returns the config spelling of s.
func (s Sampling) String() string {
	switch s {
	case SamplingIndependent:
		return samplingIndependentName
	case SamplingDistinct:
		return samplingDistinctName
	default:
		return fmt.Sprintf("Sampling(%d)", uint8(s))
	}
}

// ParseSampling maps "independent" / "distinct" (case-insensitive) to a
// Sampling. The empty string means SamplingIndependent.
func ParseSampling(s string) (Sampling, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", samplingIndependentName:
		return SamplingIndependent, nil
	case samplingDistinctName:
		return SamplingDistinct, nil
	default:
		return 0, fmt.Errorf("unknown sampling policy %q: %w", s, ErrInvalidRange)
	}
}

// DiagonalSpec describes how the base matrix is seeded.
type DiagonalSpec[T matrix.Element] struct {
	Size     IntRange // n ∈ [Size.Min, Size.Max), Size.Min >= 1
	Values   Range[T] // each diagonal entry ∈ [Values.Min, Values.Max)
	Sampling Sampling
}

// Validate checks every range in s. It never samples.
//
// Errors:
//   - ErrInvalidRange (wrapped with the offending field).
func (s DiagonalSpec[T]) Validate() error {
	if err := validateCount("size", s.Size, minMatrixSize); err != nil {
		return err
	}
	if err := validateValues(s.Values); err != nil {
		return err
	}
	if s.Sampling != SamplingIndependent && s.Sampling != SamplingDistinct {
		return fmt.Errorf("sampling %v: %w", s.Sampling, ErrInvalidRange)
	}
	if s.Sampling == SamplingDistinct {
		// Every n the size range can produce must fit into the value range.
		if err := ensureDistinctCapacity(s.Values, s.Size.Max-1); err != nil {
			return err
		}
	}

	return nil
}

// minMatrixSize is the smallest n a fixture may have.
const minMatrixSize = 1

// minTransforms is the smallest number of transforms a range may start at.
const minTransforms = 0

// validateCount checks [r.Min, r.Max) with r.Min >= floor.
func validateCount(field string, r IntRange, floor int) error {
	if r.Min < floor {
		return fmt.Errorf("%s range [%d,%d): min must be >= %d: %w", field, r.Min, r.Max, floor, ErrInvalidRange)
	}
	if r.Min >= r.Max {
		return fmt.Errorf("%s range [%d,%d): %w", field, r.Min, r.Max, ErrInvalidRange)
	}

	return nil
}

// validateValues checks Min < Max and that the width Max-Min is representable.
func validateValues[T matrix.Element](r Range[T]) error {
	if !(r.Min < r.Max) { // also rejects NaN bounds
		return fmt.Errorf("value range [%v,%v): %w", r.Min, r.Max, ErrInvalidRange)
	}
	if _, ok := matrix.CheckedSub(r.Max, r.Min); !ok {
		return fmt.Errorf("value range [%v,%v): width overflows: %w", r.Min, r.Max, ErrInvalidRange)
	}

	return nil
}

// ensureDistinctCapacity rejects integer ranges narrower than n.
// A float range always has enough distinct values.
func ensureDistinctCapacity[T matrix.Element](r Range[T], n int) error {
	lo, isInt := any(r.Min).(int64)
	if !isInt {
		return nil
	}
	hi := any(r.Max).(int64)
	if width, ok := matrix.CheckedSub(hi, lo); ok && width < int64(n) {
		return fmt.Errorf("distinct sampling of %d values from [%d,%d): %w", n, lo, hi, ErrInvalidRange)
	}

	return nil
}
