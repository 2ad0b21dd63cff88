// SPDX-License-Identifier: MIT
// Package: detgen
//
// errors.go — sentinel errors for the determinant fixture generator.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w and a method tag
//     ("BuildDiagonal: size range [3,3): detgen: invalid range").
//   • Option constructors (WithX) panic on meaningless input; algorithms never panic.

package detgen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fixturegen/matrix"
)

// ErrInvalidRange indicates a half-open range [min,max) with min >= max, a
// bound outside its domain (size < 1, negative transform count), or a
// distinct-sampling request larger than the range.
var ErrInvalidRange = errors.New("detgen: invalid range")

// ErrNeedRandSource indicates that a nil *rand.Rand was passed to a
// stochastic function.
var ErrNeedRandSource = errors.New("detgen: rng is required")

// ErrMalformed indicates fixture text that does not follow the format.
var ErrMalformed = errors.New("detgen: malformed fixture text")

// ErrOverflow aliases matrix.ErrOverflow so errors.Is matches whichever
// layer detected the overflow.
var ErrOverflow = matrix.ErrOverflow

// Method tags for error context.
const (
	methodBuildDiagonal = "BuildDiagonal"
	methodScramble      = "Scramble"
	methodApply         = "Apply"
	methodGenerate      = "Generate"
	methodParse         = "Parse"
	methodNew           = "New"
)

// detgenErrorf prefixes err with the method tag and a formatted detail.
func detgenErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
