// SPDX-License-Identifier: MIT
// Package: detgen
//
// sample.go — uniform draws over half-open ranges.
// Callers validate ranges first; these helpers assume Min < Max.

package detgen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/fixturegen/matrix"
)

// drawCount returns n uniformly from [r.Min, r.Max).
// Complexity: O(1).
func drawCount(rng *rand.Rand, r IntRange) int {
	return r.Min + rng.Intn(r.Max-r.Min)
}

// drawValue returns a uniform value from [r.Min, r.Max).
//   - int64:   Min + Int63n(Max-Min)
//   - float64: Min + Float64()*(Max-Min)
//
// Complexity: O(1).
func drawValue[T matrix.Element](rng *rand.Rand, r Range[T]) T {
	switch lo := any(r.Min).(type) {
	case int64:
		hi := any(r.Max).(int64)
		return any(lo + rng.Int63n(hi-lo)).(T)
	case float64:
		hi := any(r.Max).(float64)
		v := lo + rng.Float64()*(hi-lo)
		if v >= hi { // rounding can land exactly on the open bound
			v = lo
		}
		return any(v).(T)
	}

	return r.Min
}

// drawValues fills n values per the sampling policy.
//   - SamplingIndependent: n independent draws.
//   - SamplingDistinct:    rejection sampling until n distinct values; the
//     range was validated to hold at least n values.
//
// For float64 ranges and decimals >= 0 every value lies on the 10^-decimals
// grid (see grid.go).
//
// Errors:
//   - ErrInvalidRange when the grid is empty or too small for distinct draws.
//
// Complexity: O(n) expected for independent; O(n log n) expected worst case
// for distinct (coupon collector when the range width equals n).
func drawValues[T matrix.Element](rng *rand.Rand, r Range[T], n int, policy Sampling, decimals int) ([]T, error) {
	g, snapped, err := gridFor(r, decimals)
	if err != nil {
		return nil, err
	}
	if snapped && policy == SamplingDistinct && g.points() < int64(n) {
		return nil, fmt.Errorf("%d distinct values from %d grid points: %w", n, g.points(), ErrInvalidRange)
	}
	draw := func() T { return drawValue(rng, r) }
	if snapped {
		draw = func() T { return any(g.draw(rng)).(T) }
	}

	out := make([]T, 0, n)
	if policy != SamplingDistinct {
		var i int
		for i = 0; i < n; i++ {
			out = append(out, draw())
		}
		return out, nil
	}

	seen := make(map[T]struct{}, n)
	var v T
	for len(out) < n {
		v = draw()
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out, nil
}
