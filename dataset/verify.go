// SPDX-License-Identifier: MIT
// Package dataset - fixture verification.
//
// Verify re-reads stored fixtures and recomputes every answer independently:
//   - determinant pairs (input starts with a header line): exact rational
//     elimination over the printed decimals; integer answers must match
//     exactly, answers with p decimals within 10^-p.
//   - range-count pairs (k/q tokens): recount by scanning the keys.
//   - sort pairs: sort the input values.
//
// It checks the fixtures themselves, never an engine under test.

package dataset

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"github.com/katalvlaran/fixturegen/config"
	"github.com/katalvlaran/fixturegen/detgen"
	"github.com/katalvlaran/fixturegen/rangegen"
	"github.com/katalvlaran/fixturegen/sortgen"
)

// VerifyReport counts the verified pairs per kind.
type VerifyReport struct {
	Checked int
	ByKind  map[config.Kind]int
}

// Verify checks every "*.dat" / "*.dat.ans" pair in dir. All pairs are
// checked; the failures are combined into one error.
//
// Errors:
//   - ErrStorage when dir or a file cannot be read, or an answer file is missing.
//   - ErrMismatch for a wrong answer.
//   - detgen.ErrMalformed for unparsable text.
func Verify(dir string) (VerifyReport, error) {
	rep := VerifyReport{ByKind: make(map[config.Kind]int)}
	if _, err := os.Stat(dir); err != nil {
		return rep, fmt.Errorf("Verify %s: %v: %w", dir, err, ErrStorage)
	}
	inputs, err := filepath.Glob(filepath.Join(dir, "*"+InputExt))
	if err != nil {
		return rep, fmt.Errorf("Verify %s: %v: %w", dir, err, ErrStorage)
	}
	sort.Strings(inputs)

	var errs error
	for _, in := range inputs {
		kind, err := verifyFile(in)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", filepath.Base(in), err))
			continue
		}
		rep.Checked++
		rep.ByKind[kind]++
	}

	return rep, errs
}

func verifyFile(inPath string) (config.Kind, error) {
	in, err := os.ReadFile(inPath)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, ErrStorage)
	}
	ans, err := os.ReadFile(inPath + AnswerExt)
	if err != nil {
		return "", fmt.Errorf("answer: %v: %w", err, ErrStorage)
	}
	return VerifyCase(string(in), string(ans))
}

// VerifyCase recomputes the answer of one fixture and compares it with
// answer. It returns the detected fixture kind.
func VerifyCase(input, answer string) (config.Kind, error) {
	kind := detectKind(input)
	var err error
	switch kind {
	case config.KindDeterminant:
		err = verifyDeterminant(input, answer)
	case config.KindRange:
		err = verifyRange(input, answer)
	default:
		err = verifySort(input, answer)
	}
	return kind, err
}

// detectKind: determinant fixtures are the only multi-line ones; range
// fixtures start with a k/q token (or are empty).
func detectKind(input string) config.Kind {
	if strings.Contains(strings.TrimSpace(input), "\n") {
		return config.KindDeterminant
	}
	f := strings.Fields(input)
	if len(f) == 0 || f[0] == "k" || f[0] == "q" {
		return config.KindRange
	}
	return config.KindSort
}

// verifyDeterminant recomputes det exactly from the decimal text of the
// matrix. An answer printed with p decimals must lie within 10^-p of it;
// an answer without a fraction must match exactly.
func verifyDeterminant(input, answer string) error {
	got, err := detgen.ExactDet(input)
	if err != nil {
		return err
	}
	want, err := detgen.ParseExactScalar(answer)
	if err != nil {
		return err
	}

	diff := new(big.Rat).Sub(got, want)
	if diff.Abs(diff).Cmp(answerTolerance(answer)) > 0 {
		return fmt.Errorf("determinant %s, recomputed %s: %w",
			strings.TrimSpace(answer), got.FloatString(answerDecimals(answer)+2), ErrMismatch)
	}
	return nil
}

// answerDecimals counts the digits after the decimal point of answer.
func answerDecimals(answer string) int {
	a := strings.TrimSpace(answer)
	dot := strings.IndexByte(a, '.')
	if dot < 0 {
		return 0
	}
	n := 0
	for _, c := range a[dot+1:] {
		if c < '0' || c > '9' {
			break
		}
		n++
	}
	return n
}

// answerTolerance is 10^-p for an answer with p decimals, 0 for an integer.
func answerTolerance(answer string) *big.Rat {
	if !strings.Contains(answer, ".") {
		return new(big.Rat)
	}
	denom := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(answerDecimals(answer))), nil)
	return new(big.Rat).SetFrac(big.NewInt(1), denom)
}

func verifyRange(input, answer string) error {
	keys, queries, err := rangegen.Parse(input)
	if err != nil {
		return err
	}
	want, err := rangegen.ParseCounts(answer)
	if err != nil {
		return err
	}
	if len(want) != len(queries) {
		return fmt.Errorf("%d counts for %d queries: %w", len(want), len(queries), ErrMismatch)
	}
	for i, q := range queries {
		lo, hi := q.Bounds()
		n := 0
		for _, k := range keys {
			if lo <= k && k <= hi {
				n++
			}
		}
		if n != want[i] {
			return fmt.Errorf("query %d [%d,%d]: count %d, recomputed %d: %w", i+1, lo, hi, want[i], n, ErrMismatch)
		}
	}
	return nil
}

func verifySort(input, answer string) error {
	vals, err := sortgen.Parse(input)
	if err != nil {
		return err
	}
	want, err := sortgen.ParseValues(answer)
	if err != nil {
		return err
	}
	slices.Sort(vals)
	if !slices.Equal(vals, want) {
		return fmt.Errorf("sorted values differ: %w", ErrMismatch)
	}
	return nil
}
