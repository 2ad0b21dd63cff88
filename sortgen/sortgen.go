// SPDX-License-Identifier: MIT

// Package sortgen generates sorting fixtures: n distinct values in random
// order, answered by the same values ascending.
//
// Input text:  "<n> <v1> <v2> ... " (every token followed by one space).
// Answer text: "<s1> <s2> ... " with s ascending.
//
// n ~ U[Size.Min, Size.Max); values are drawn without replacement from
// [Values.Min, Values.Max). Both ranges are half-open.
package sortgen

import (
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/fixturegen/detgen"
	"github.com/katalvlaran/fixturegen/fixture"
)

var (
	ErrInvalidRange   = detgen.ErrInvalidRange
	ErrNeedRandSource = detgen.ErrNeedRandSource
	ErrMalformed      = detgen.ErrMalformed
)

// Spec holds the ranges of a sorting fixture.
type Spec struct {
	Size   detgen.IntRange
	Values detgen.IntRange
}

// Generator produces sorting fixtures.
type Generator struct {
	spec Spec
}

var _ fixture.Generator = (*Generator)(nil)

// New validates spec eagerly.
//
// Errors:
//   - ErrInvalidRange for an empty range, a negative size, or a size that
//     cannot be drawn without replacement from Values.
func New(spec Spec) (*Generator, error) {
	if spec.Size.Min < 0 || spec.Size.Min >= spec.Size.Max {
		return nil, fmt.Errorf("sortgen.New: size range [%d,%d): %w", spec.Size.Min, spec.Size.Max, ErrInvalidRange)
	}
	if spec.Values.Min >= spec.Values.Max {
		return nil, fmt.Errorf("sortgen.New: value range [%d,%d): %w", spec.Values.Min, spec.Values.Max, ErrInvalidRange)
	}
	width, ok := spec.Values.Width()
	if !ok {
		return nil, fmt.Errorf("sortgen.New: value range [%d,%d): width overflows int: %w", spec.Values.Min, spec.Values.Max, ErrInvalidRange)
	}
	if spec.Size.Max-1 > width {
		return nil, fmt.Errorf("sortgen.New: %d distinct values from a range of %d: %w", spec.Size.Max-1, width, ErrInvalidRange)
	}
	return &Generator{spec: spec}, nil
}

// Values draws one unsorted sample.
func (g *Generator) Values(rng *rand.Rand) ([]int, error) {
	if rng == nil {
		return nil, fmt.Errorf("sortgen.Generate: %w", ErrNeedRandSource)
	}
	n := g.spec.Size.Min + rng.Intn(g.spec.Size.Max-g.spec.Size.Min)
	// Perm over the value width keeps the draw without replacement.
	width, _ := g.spec.Values.Width() // validated by New
	out := make([]int, n)
	if width <= 4*n {
		for i, off := range rng.Perm(width)[:n] {
			out[i] = g.spec.Values.Min + off
		}
		return out, nil
	}
	seen := make(map[int]struct{}, n)
	for i := 0; i < n; {
		v := g.spec.Values.Min + rng.Intn(width)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out[i] = v
		i++
	}
	return out, nil
}

// Generate draws and formats one fixture.
func (g *Generator) Generate(rng *rand.Rand) (fixture.TestCase, error) {
	vals, err := g.Values(rng)
	if err != nil {
		return fixture.TestCase{}, err
	}
	return Format(vals), nil
}

// Format renders values and their ascending order. values is not modified.
func Format(values []int) fixture.TestCase {
	var in strings.Builder
	in.WriteString(strconv.Itoa(len(values)) + " ")
	for _, v := range values {
		in.WriteString(strconv.Itoa(v) + " ")
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return fixture.TestCase{Input: in.String(), Answer: join(sorted)}
}

func join(vs []int) string {
	var b strings.Builder
	for _, v := range vs {
		b.WriteString(strconv.Itoa(v) + " ")
	}
	return b.String()
}

// Parse reads fixture input text back. The leading count must match the
// number of values that follow.
func Parse(input string) ([]int, error) {
	f := strings.Fields(input)
	if len(f) == 0 {
		return nil, fmt.Errorf("sortgen.Parse: empty input: %w", ErrMalformed)
	}
	n, err := strconv.Atoi(f[0])
	if err != nil || n != len(f)-1 {
		return nil, fmt.Errorf("sortgen.Parse: count %q for %d values: %w", f[0], len(f)-1, ErrMalformed)
	}
	return ParseValues(strings.Join(f[1:], " "))
}

// ParseValues reads a whitespace-separated list of integers.
func ParseValues(text string) ([]int, error) {
	f := strings.Fields(text)
	out := make([]int, len(f))
	for i, s := range f {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("sortgen.Parse: value %q: %w", s, ErrMalformed)
		}
		out[i] = v
	}
	return out, nil
}
