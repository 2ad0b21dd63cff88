// SPDX-License-Identifier: MIT
// Package: detgen
//
// transform.go — ElementaryTransformEngine.
//
// Canonical model:
//   - Each step flips a fair coin between OpAddRow and OpSwapRows.
//   - Rows (a, b) are an ordered pair drawn uniformly without replacement from [0,n).
//   - OpAddRow additionally draws sign s ∈ {−1,+1}: row[a] ← row[a] + s·row[b].
//   - OpSwapRows exchanges row[a] and row[b].
//
// Determinant rules (by induction over the sequence):
//   - OpAddRow   → det unchanged (coefficient ±1 combination of another row).
//   - OpSwapRows → det negated (exactly once per swap).
//
// Degenerate size: n < 2 has no distinct pair; Scramble applies nothing and
// draws nothing. This is not an error.
//
// Determinism:
//   - Per step the draw order is: coin, a, b, then sign (OpAddRow only).

package detgen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/fixturegen/matrix"
)

// OpKind tags a TransformOp.
type OpKind uint8

const (
	// OpAddRow is row[Target] ← row[Target] + Sign·row[Source].
	OpAddRow OpKind = iota
	// OpSwapRows exchanges row[Target] and row[Source].
	OpSwapRows
)

// String returns a short name for logs.
func (k OpKind) String() string {
	switch k {
	case OpAddRow:
		return "add-row"
	case OpSwapRows:
		return "swap-rows"
	default:
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}
}

// TransformOp is one elementary row operation. It is a tagged variant: Sign is
// meaningful only for OpAddRow and is ignored for OpSwapRows.
type TransformOp struct {
	Kind   OpKind
	Target int
	Source int
	Sign   int
}

// AddRow builds row[target] += sign·row[source].
func AddRow(target, source, sign int) TransformOp {
	return TransformOp{Kind: OpAddRow, Target: target, Source: source, Sign: sign}
}

// SwapRows builds the exchange of rows i and j.
func SwapRows(i, j int) TransformOp {
	return TransformOp{Kind: OpSwapRows, Target: i, Source: j}
}

// String renders op for debug logs.
func (op TransformOp) String() string {
	if op.Kind == OpAddRow {
		return fmt.Sprintf("row%d += %+d*row%d", op.Target, op.Sign, op.Source)
	}
	return fmt.Sprintf("swap row%d <-> row%d", op.Target, op.Source)
}

// distinctPair draws an ordered pair (a, b), a≠b, uniformly from [0,n)², n >= 2.
func distinctPair(rng *rand.Rand, n int) (int, int) {
	a := rng.Intn(n)
	b := rng.Intn(n - 1)
	if b >= a {
		b++
	}
	return a, b
}

// RandomOp draws one operation for an n×n matrix.
// Returns ok == false (and draws nothing) when n < 2.
//
// Complexity: O(1).
func RandomOp(rng *rand.Rand, n int) (op TransformOp, ok bool) {
	if n < 2 {
		return TransformOp{}, false
	}
	if rng.Intn(2) == 0 {
		a, b := distinctPair(rng, n)
		sign := 1
		if rng.Intn(2) == 0 {
			sign = -1
		}
		return AddRow(a, b, sign), true
	}
	a, b := distinctPair(rng, n)

	return SwapRows(a, b), true
}

// Apply performs op on m and updates tr in lockstep.
// The matrix is mutated first; the tracker only observes an operation that
// succeeded, so the invariant holds even when Apply fails.
//
// Errors:
//   - matrix.ErrOutOfRange / ErrSameRow / ErrBadSign for an invalid op.
//   - ErrOverflow when an entry or the determinant leaves the domain.
//
// Complexity: O(n).
func Apply[T matrix.Element](m *matrix.Dense[T], tr *Tracker[T], op TransformOp) error {
	var err error
	switch op.Kind {
	case OpAddRow:
		err = m.AddScaledRow(op.Target, op.Source, op.Sign)
	case OpSwapRows:
		// Pre-check the determinant flip so a failure cannot desync the pair.
		if _, ok := matrix.CheckedNeg(tr.Value()); !ok {
			return detgenErrorf(methodApply, ErrOverflow, "%v: det %v", op, tr.Value())
		}
		err = m.SwapRows(op.Target, op.Source)
	default:
		return fmt.Errorf("%s: unknown op kind %v: %w", methodApply, op.Kind, ErrMalformed)
	}
	if err != nil {
		return detgenErrorf(methodApply, err, "%v", op)
	}

	return tr.Observe(op)
}

// Scramble draws and applies k random operations.
// Returns the number of operations actually applied (0 when n < 2).
// On error the matrix and tracker reflect the operations applied so far and
// remain consistent with each other.
//
// Complexity: Time O(k·n), Space O(n).
func Scramble[T matrix.Element](rng *rand.Rand, m *matrix.Dense[T], tr *Tracker[T], k int) (int, error) {
	if rng == nil {
		return 0, detgenErrorf(methodScramble, ErrNeedRandSource, "rng")
	}
	if m == nil || tr == nil {
		return 0, detgenErrorf(methodScramble, matrix.ErrNilMatrix, "matrix/tracker")
	}
	if m.Size() < 2 {
		return 0, nil
	}

	var (
		i  int
		op TransformOp
	)
	for i = 0; i < k; i++ {
		op, _ = RandomOp(rng, m.Size())
		if err := Apply(m, tr, op); err != nil {
			return i, detgenErrorf(methodScramble, err, "step %d/%d", i+1, k)
		}
	}

	return k, nil
}
