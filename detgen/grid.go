// SPDX-License-Identifier: MIT
// Package: detgen
//
// grid.go — decimal grid for float diagonals.
//
// A float fixture is printed with `decimals` digits after the point. Drawing
// the diagonal on the grid {k·10^-decimals} makes the printed matrix exact:
// ±1 row additions of grid values stay on the grid, so the text a consumer
// parses is precisely E·D with det(E) = ±1 and det(D) = ∏ diagonal.
//
// The grid index k is drawn uniformly from [kLo, kHi], the grid points inside
// [Min, Max).

package detgen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/fixturegen/matrix"
)

// noGrid disables snapping.
const noGrid = -1

// maxGridIndex bounds |k| so k and k/scale stay exact in float64.
const maxGridIndex = 1 << 53

// grid is the set of points k/scale, kLo <= k <= kHi.
type grid struct {
	scale    float64
	kLo, kHi int64
}

// snapIndex rounds x to the nearest integer when it is within float noise of
// one (0.1*1000 is 100.00000000000001).
func snapIndex(x float64) float64 {
	if r := math.Round(x); math.Abs(x-r) <= 1e-9*math.Max(1, math.Abs(x)) {
		return r
	}
	return x
}

// newGrid returns the grid points of [r.Min, r.Max) at the given decimals.
//
// Errors:
//   - ErrInvalidRange when no grid point lies in the range or the grid is too
//     fine to be represented exactly.
func newGrid(r Range[float64], decimals int) (grid, error) {
	scale := math.Pow(10, float64(decimals))
	lo, hi := snapIndex(r.Min*scale), snapIndex(r.Max*scale)
	if math.Abs(lo) >= maxGridIndex || math.Abs(hi) >= maxGridIndex || math.IsInf(scale, 0) {
		return grid{}, fmt.Errorf("value range [%v,%v) at %d decimals: grid too fine: %w",
			r.Min, r.Max, decimals, ErrInvalidRange)
	}
	g := grid{scale: scale, kLo: int64(math.Ceil(lo)), kHi: int64(math.Ceil(hi)) - 1}
	if g.kLo > g.kHi {
		return grid{}, fmt.Errorf("value range [%v,%v) holds no value with %d decimals: %w",
			r.Min, r.Max, decimals, ErrInvalidRange)
	}

	return g, nil
}

// points returns how many grid values exist.
func (g grid) points() int64 { return g.kHi - g.kLo + 1 }

// draw returns a uniform grid point.
func (g grid) draw(rng *rand.Rand) float64 {
	return float64(g.kLo+rng.Int63n(g.points())) / g.scale
}

// gridFor returns the grid for float ranges when decimals >= 0.
// ok is false for int64 ranges or when snapping is off.
func gridFor[T matrix.Element](r Range[T], decimals int) (g grid, ok bool, err error) {
	fr, isFloat := any(r).(Range[float64])
	if !isFloat || decimals < 0 {
		return grid{}, false, nil
	}
	g, err = newGrid(fr, decimals)
	return g, err == nil, err
}

// validateGrid checks that the grid exists and, for distinct sampling, that
// it holds every n the size range can produce.
func validateGrid[T matrix.Element](s DiagonalSpec[T], decimals int) error {
	g, ok, err := gridFor(s.Values, decimals)
	if err != nil || !ok {
		return err
	}
	if s.Sampling == SamplingDistinct && g.points() < int64(s.Size.Max-1) {
		return fmt.Errorf("distinct sampling of %d values from %d grid points: %w",
			s.Size.Max-1, g.points(), ErrInvalidRange)
	}

	return nil
}

// snapMatrix rounds float entries back onto the grid, undoing the binary
// rounding error row additions accumulate (0.1+0.2). Grid sums stay on the
// grid, so this only removes noise. No-op for int64.
func snapMatrix[T matrix.Element](m *matrix.Dense[T], decimals int) {
	fm, ok := any(m).(*matrix.Dense[float64])
	if !ok || decimals < 0 {
		return
	}
	scale := math.Pow(10, float64(decimals))
	n := fm.Size()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ := fm.At(i, j)
			_ = fm.Set(i, j, math.Round(v*scale)/scale)
		}
	}
}
