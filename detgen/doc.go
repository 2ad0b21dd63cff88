// Package detgen generates determinant fixtures: a square matrix together with
// its exact determinant, known analytically rather than computed.
//
// Pipeline (one test case):
//
//	BuildDiagonal ──► Scramble (RandomOp → Apply) ──► Format
//	      │                 │
//	      └── det = ∏ d_i ──┴── Tracker: ×(−1) per swap, unchanged per row addition
//
// Components:
//
//   - BuildDiagonal:  n ∈ [min,max), diagonal entries ∈ [min,max), zeros elsewhere;
//     returns the matrix and ∏ diagonal (exact by construction).
//   - TransformOp:    tagged variant, OpAddRow(target, source, sign) or OpSwapRows(i, j).
//   - Scramble/Apply: k ∈ [min,max) operations chosen by a fair coin, applied to
//     the matrix and the Tracker in lockstep. n < 2 applies nothing.
//   - Tracker:        the running determinant; never recomputed numerically.
//   - Format/Parse:   the text fixture format (header n, n rows of n fixed-width
//     fields; answer is one scalar) and its inverse.
//
// Guarantees:
//
//   - After every Apply, Tracker.Value() is the true determinant of the matrix.
//   - Invalid ranges fail with ErrInvalidRange before any sampling.
//   - int64 overflow (entries or determinant) fails with ErrOverflow; nothing
//     wrapped is ever emitted.
//   - Determinism: all randomness comes from the caller's *rand.Rand.
//
// The element domain is chosen by the type parameter: int64 for integer
// fixtures, float64 for fixed-precision decimal fixtures.
package detgen
