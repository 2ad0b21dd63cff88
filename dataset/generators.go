// SPDX-License-Identifier: MIT
// Package dataset - job → generator mapping.

package dataset

import (
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/fixturegen/config"
	"github.com/katalvlaran/fixturegen/detgen"
	"github.com/katalvlaran/fixturegen/fixture"
	"github.com/katalvlaran/fixturegen/matrix"
	"github.com/katalvlaran/fixturegen/rangegen"
	"github.com/katalvlaran/fixturegen/sortgen"
)

// NewGenerator maps a validated job to its generator. All ranges are checked
// here, before anything touches the filesystem.
//
// Errors:
//   - ErrConfiguration when the job itself is invalid (or integer mode is
//     given a fractional diagonal bound).
//   - detgen.ErrInvalidRange for empty or unusable ranges.
func NewGenerator(job config.Job, logger *zap.Logger) (fixture.Generator, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	switch job.Kind {
	case config.KindDeterminant:
		return newDeterminant(job, logger)
	case config.KindRange:
		g, err := rangegen.New(rangegen.Spec{
			Keys:    intRange(*job.NKeysRange),
			Queries: intRange(*job.NQsRange),
			Values:  intRange(*job.KRange),
		})
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.KindSort:
		g, err := sortgen.New(sortgen.Spec{
			Size:   intRange(*job.SizeRange),
			Values: intRange(*job.DataRange),
		})
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		// unreachable after Validate
		return nil, fmt.Errorf("job %s: unknown kind: %w", job.Label(), ErrConfiguration)
	}
}

func intRange(b config.IntBounds) detgen.IntRange {
	return detgen.IntRange{Min: b.Min, Max: b.Max}
}

func newDeterminant(job config.Job, logger *zap.Logger) (fixture.Generator, error) {
	sampling, err := detgen.ParseSampling(job.Sampling)
	if err != nil {
		return nil, err
	}
	var opts []detgen.Option
	if job.Width != nil {
		opts = append(opts, detgen.WithWidth(*job.Width))
	}
	if job.Precision != nil {
		opts = append(opts, detgen.WithPrecision(*job.Precision))
	}
	size := intRange(*job.MatrixSizeRange)
	transforms := intRange(*job.ElementaryTransformsRange)
	diag := *job.DiagElemsRange

	if !*job.Integer {
		return determinant(detgen.DiagonalSpec[float64]{
			Size:     size,
			Values:   detgen.Range[float64]{Min: diag.Min, Max: diag.Max},
			Sampling: sampling,
		}, transforms, opts, logger)
	}

	lo, okLo := wholeInt64(diag.Min)
	hi, okHi := wholeInt64(diag.Max)
	if !okLo || !okHi {
		return nil, fmt.Errorf("job %s: integer mode needs whole diagElemsRange bounds, got [%v,%v): %w",
			job.Label(), diag.Min, diag.Max, ErrConfiguration)
	}
	return determinant(detgen.DiagonalSpec[int64]{
		Size:     size,
		Values:   detgen.Range[int64]{Min: lo, Max: hi},
		Sampling: sampling,
	}, transforms, opts, logger)
}

// wholeInt64 converts f when it is an integral value inside the int64 range.
func wholeInt64(f float64) (int64, bool) {
	if math.Trunc(f) != f || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// determinant wraps a detgen.Generator so size-1 draws, which cannot be
// scrambled, are reported at debug level.
func determinant[T matrix.Element](
	spec detgen.DiagonalSpec[T],
	transforms detgen.IntRange,
	opts []detgen.Option,
	logger *zap.Logger,
) (fixture.Generator, error) {
	g, err := detgen.New(spec, transforms, opts...)
	if err != nil {
		return nil, err
	}

	return fixture.GeneratorFunc(func(rng *rand.Rand) (fixture.TestCase, error) {
		c, err := g.GenerateCase(rng)
		if err != nil {
			return fixture.TestCase{}, err
		}
		if c.Matrix.Size() < 2 {
			logger.Debug("1x1 matrix, transforms skipped", zap.Int("requested", c.Requested))
		}
		return detgen.Format(c.Matrix, c.Det, g.Format()), nil
	}), nil
}
