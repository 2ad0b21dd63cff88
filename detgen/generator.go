// SPDX-License-Identifier: MIT
// Package: detgen
//
// generator.go — one-call pipeline: BuildDiagonal → Scramble → Format.

package detgen

import (
	"math/rand"

	"github.com/katalvlaran/fixturegen/fixture"
	"github.com/katalvlaran/fixturegen/matrix"
)

// Generator produces determinant fixtures from validated, read-only ranges.
// It is safe for concurrent use as long as every goroutine brings its own rng.
type Generator[T matrix.Element] struct {
	diagonal   DiagonalSpec[T]
	transforms IntRange
	cfg        genConfig
}

// Compile-time assertion that Generator plugs into the orchestrator.
var (
	_ fixture.Generator = (*Generator[int64])(nil)
	_ fixture.Generator = (*Generator[float64])(nil)
)

// Case is a generated fixture before formatting.
type Case[T matrix.Element] struct {
	Matrix    *matrix.Dense[T]
	Det       T
	Requested int // k drawn from the transform range
	Applied   int // k, or 0 when n < 2
	Swaps     int
}

// New validates every range eagerly and returns a Generator.
//
// Errors:
//   - ErrInvalidRange for the diagonal spec or the transform range (min >= 0),
//     or a float value range holding no value at the configured precision.
func New[T matrix.Element](diagonal DiagonalSpec[T], transforms IntRange, opts ...Option) (*Generator[T], error) {
	if err := diagonal.Validate(); err != nil {
		return nil, detgenErrorf(methodNew, err, "diagonal")
	}
	if err := validateCount("transforms", transforms, minTransforms); err != nil {
		return nil, detgenErrorf(methodNew, err, "transforms")
	}
	cfg := newGenConfig(opts...)
	if err := validateGrid(diagonal, cfg.format.Precision); err != nil {
		return nil, detgenErrorf(methodNew, err, "diagonal")
	}

	return &Generator[T]{
		diagonal:   diagonal,
		transforms: transforms,
		cfg:        cfg,
	}, nil
}

// Format returns the formatting options in effect.
func (g *Generator[T]) Format() FormatOptions { return g.cfg.format }

// GenerateCase runs the pipeline and returns the unformatted result.
// Float entries are exact multiples of 10^-Precision, so the printed matrix
// has exactly the determinant Det rounded to Precision.
//
// Errors:
//   - ErrNeedRandSource, ErrInvalidRange, ErrOverflow.
//
// Complexity: Time O(n² + k·n), Space O(n²).
func (g *Generator[T]) GenerateCase(rng *rand.Rand) (Case[T], error) {
	if rng == nil {
		return Case[T]{}, detgenErrorf(methodGenerate, ErrNeedRandSource, "rng")
	}
	m, det, err := buildDiagonal(rng, g.diagonal, g.cfg.format.Precision)
	if err != nil {
		return Case[T]{}, detgenErrorf(methodGenerate, err, "base matrix")
	}
	tr := NewTracker(det)
	k := drawCount(rng, g.transforms)
	applied, err := Scramble(rng, m, tr, k)
	if err != nil {
		return Case[T]{}, detgenErrorf(methodGenerate, err, "n=%d", m.Size())
	}
	snapMatrix(m, g.cfg.format.Precision)

	return Case[T]{
		Matrix:    m,
		Det:       tr.Value(),
		Requested: k,
		Applied:   applied,
		Swaps:     tr.Swaps(),
	}, nil
}

// Generate runs the pipeline and formats the result.
func (g *Generator[T]) Generate(rng *rand.Rand) (fixture.TestCase, error) {
	c, err := g.GenerateCase(rng)
	if err != nil {
		return fixture.TestCase{}, err
	}

	return Format(c.Matrix, c.Det, g.cfg.format), nil
}
