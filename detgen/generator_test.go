package detgen_test

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/fixturegen/detgen"
	"github.com/katalvlaran/fixturegen/matrix"
	"github.com/stretchr/testify/require"
)

// TestGenerate_IntegerDeterminantCorrect parses every emitted fixture and
// checks the answer against an exact Bareiss determinant.
func TestGenerate_IntegerDeterminantCorrect(t *testing.T) {
	g, err := detgen.New(intSpec(1, 9, -6, 7), detgen.IntRange{Min: 0, Max: 60})
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1234))

	var trial int
	for trial = 0; trial < 200; trial++ {
		tc, err := g.Generate(rng)
		require.NoError(t, err)

		m, err := detgen.ParseMatrix[int64](tc.Input)
		require.NoError(t, err)
		want, err := detgen.ParseScalar[int64](tc.Answer)
		require.NoError(t, err)

		got, err := matrix.DetBareiss(m)
		require.NoError(t, err)
		require.Zero(t, got.Cmp(big.NewInt(want)), "trial %d\n%s\nanswer %s, reference %s", trial, tc.Input, tc.Answer, got)
	}
}

// TestGenerate_FloatDeterminantExact uses the historical float job
// (size [2,10), diagonal [-5,6), 10..49 transforms) and checks, for every
// fixture as a consumer parses it, that each entry lies on the printed grid
// and that the exact determinant of the printed decimals is within 10^-p of
// the answer.
func TestGenerate_FloatDeterminantExact(t *testing.T) {
	spec := detgen.DiagonalSpec[float64]{
		Size:   detgen.IntRange{Min: 2, Max: 10},
		Values: detgen.Range[float64]{Min: -5, Max: 6},
	}
	for _, precision := range []int{0, 1, 3} {
		t.Run(fmt.Sprintf("precision=%d", precision), func(t *testing.T) {
			g, err := detgen.New(spec, detgen.IntRange{Min: 10, Max: 50}, detgen.WithPrecision(precision))
			require.NoError(t, err)
			rng := rand.New(rand.NewSource(int64(100 + precision)))
			scale := new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(precision)), nil))
			tol := new(big.Rat).Inv(scale)

			var trial int
			for trial = 0; trial < 500; trial++ {
				c, err := g.GenerateCase(rng)
				require.NoError(t, err)

				tc := detgen.Format(c.Matrix, c.Det, g.Format())
				for _, f := range strings.Fields(tc.Input)[1:] {
					v, ok := new(big.Rat).SetString(f)
					require.True(t, ok, f)
					require.True(t, v.Mul(v, scale).IsInt(), "entry %s off the 10^-%d grid", f, precision)
				}

				got, err := detgen.ExactDet(tc.Input)
				require.NoError(t, err)
				want, err := detgen.ParseExactScalar(tc.Answer)
				require.NoError(t, err)
				diff := new(big.Rat).Sub(got, want)
				require.LessOrEqual(t, diff.Abs(diff).Cmp(tol), 0,
					"trial %d\n%s\nanswer %s, exact %s", trial, tc.Input, tc.Answer, got.FloatString(precision+3))
			}
		})
	}
}

// TestGenerateCase_FloatAgreesWithLU cross-checks the tracked determinant
// against partial-pivot LU on well-conditioned matrices (positive diagonal,
// few transforms).
func TestGenerateCase_FloatAgreesWithLU(t *testing.T) {
	spec := detgen.DiagonalSpec[float64]{
		Size:   detgen.IntRange{Min: 1, Max: 7},
		Values: detgen.Range[float64]{Min: 0.5, Max: 3},
	}
	g, err := detgen.New(spec, detgen.IntRange{Min: 0, Max: 15}, detgen.WithPrecision(6))
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(4321))

	var trial int
	for trial = 0; trial < 200; trial++ {
		c, err := g.GenerateCase(rng)
		require.NoError(t, err)
		ref, err := matrix.DetLU(c.Matrix)
		require.NoError(t, err)
		require.InDelta(t, c.Det, ref, 1e-9*math.Max(1, math.Abs(c.Det)), "trial %d", trial)
	}
}

func TestNew_FloatRangeWithoutGridPoints(t *testing.T) {
	empty := detgen.DiagonalSpec[float64]{
		Size:   detgen.IntRange{Min: 1, Max: 3},
		Values: detgen.Range[float64]{Min: 0.1, Max: 0.2},
	}
	_, err := detgen.New(empty, detgen.IntRange{Min: 0, Max: 1}, detgen.WithPrecision(0))
	require.ErrorIs(t, err, detgen.ErrInvalidRange)
	require.ErrorContains(t, err, "no value with 0 decimals")

	// One more decimal opens the grid: 0.1 is a grid point.
	_, err = detgen.New(empty, detgen.IntRange{Min: 0, Max: 1}, detgen.WithPrecision(1))
	require.NoError(t, err)

	// [0, 2) holds 0 and 1 at precision 0: too few for 3 distinct values.
	distinct := detgen.DiagonalSpec[float64]{
		Size:     detgen.IntRange{Min: 1, Max: 4},
		Values:   detgen.Range[float64]{Min: 0, Max: 2},
		Sampling: detgen.SamplingDistinct,
	}
	_, err = detgen.New(distinct, detgen.IntRange{Min: 0, Max: 1}, detgen.WithPrecision(0))
	require.ErrorIs(t, err, detgen.ErrInvalidRange)
	_, err = detgen.New(distinct, detgen.IntRange{Min: 0, Max: 1}, detgen.WithPrecision(1))
	require.NoError(t, err)
}

func TestExactDet(t *testing.T) {
	got, err := detgen.ExactDet("2\n0.1\t0.2\t\n0.3\t0.4\t\n")
	require.NoError(t, err)
	require.Equal(t, "-0.02", got.FloatString(2))

	got, err = detgen.ExactDet("2\n0 3\n2 0\n")
	require.NoError(t, err)
	require.Equal(t, "-6", got.RatString())

	for _, bad := range []string{"", "2\n1 2 3", "1\nNaN", "1\n1/2", "x\n1"} {
		_, err = detgen.ExactDet(bad)
		require.ErrorIs(t, err, detgen.ErrMalformed, "%q", bad)
	}
	_, err = detgen.ParseExactScalar("1 2")
	require.ErrorIs(t, err, detgen.ErrMalformed)
}

func TestGenerateCase_SizeBoundsAndDegenerateSize(t *testing.T) {
	g, err := detgen.New(intSpec(1, 4, 1, 5), detgen.IntRange{Min: 5, Max: 10})
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(77))

	sawOne := false
	var trial int
	for trial = 0; trial < 300; trial++ {
		c, err := g.GenerateCase(rng)
		require.NoError(t, err)
		n := c.Matrix.Size()
		require.GreaterOrEqual(t, n, 1)
		require.Less(t, n, 4)
		require.GreaterOrEqual(t, c.Requested, 5)
		require.Less(t, c.Requested, 10)
		if n == 1 {
			sawOne = true
			require.Zero(t, c.Applied)
			require.True(t, c.Matrix.IsDiagonal())
			continue
		}
		require.Equal(t, c.Requested, c.Applied)
	}
	require.True(t, sawOne, "size range [1,4) should produce n=1 in 300 draws")
}

func TestGenerate_SameSeedSameFixture(t *testing.T) {
	g, err := detgen.New(intSpec(2, 10, -9, 10), detgen.IntRange{Min: 1, Max: 100})
	require.NoError(t, err)

	a, err := g.Generate(rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	b, err := g.Generate(rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestNew_InvalidRanges(t *testing.T) {
	_, err := detgen.New(intSpec(2, 2, 0, 1), detgen.IntRange{Min: 0, Max: 1})
	require.ErrorIs(t, err, detgen.ErrInvalidRange)
	_, err = detgen.New(intSpec(2, 3, 0, 1), detgen.IntRange{Min: 4, Max: 4})
	require.ErrorIs(t, err, detgen.ErrInvalidRange)
	_, err = detgen.New(intSpec(2, 3, 0, 1), detgen.IntRange{Min: -1, Max: 4})
	require.ErrorIs(t, err, detgen.ErrInvalidRange)
}

func TestGenerate_NilRNG(t *testing.T) {
	g, err := detgen.New(intSpec(2, 3, 0, 1), detgen.IntRange{Min: 0, Max: 1})
	require.NoError(t, err)
	_, err = g.Generate(nil)
	require.ErrorIs(t, err, detgen.ErrNeedRandSource)
}

func TestOptions(t *testing.T) {
	g, err := detgen.New(intSpec(2, 3, 0, 1), detgen.IntRange{Min: 0, Max: 1},
		detgen.WithWidth(8), detgen.WithPrecision(1))
	require.NoError(t, err)
	require.Equal(t, detgen.FormatOptions{Width: 8, Precision: 1}, g.Format())

	g, err = detgen.New(intSpec(2, 3, 0, 1), detgen.IntRange{Min: 0, Max: 1},
		detgen.WithWidth(8), detgen.WithFormat(detgen.FormatOptions{Width: 3, Precision: 2}))
	require.NoError(t, err)
	require.Equal(t, detgen.FormatOptions{Width: 3, Precision: 2}, g.Format())

	require.Panics(t, func() { detgen.WithWidth(-1) })
	require.Panics(t, func() { detgen.WithPrecision(-1) })
	require.Panics(t, func() { detgen.WithFormat(detgen.FormatOptions{Width: -1}) })
}
