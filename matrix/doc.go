// Package matrix provides the square row-major storage used by the fixture
// generators, together with the two elementary row operations they rely on
// and a pair of reference determinant solvers.
//
// The package offers:
//
//   - Dense[T]:      square n×n buffer over int64 or float64, bounds-checked
//     accessors that return errors instead of panicking.
//   - Row operations: SwapRows (negates the determinant) and AddScaledRow with
//     coefficient ±1 (keeps the determinant). Both are strictly row-indexed.
//   - Checked arithmetic: CheckedAdd/CheckedSub/CheckedMul/CheckedNeg report
//     int64 overflow and float ±Inf/NaN instead of wrapping silently.
//   - Reference solvers: DetBareiss (exact, fraction-free over big.Int),
//     DetLU (Gaussian elimination with partial pivoting) and DetRat (exact,
//     over big.Rat, for decimal text). They exist to check
//     generated fixtures; the generators never call them.
//
// Complexity:
//
//	At/Set O(1); SwapRows/AddScaledRow O(n); Clone O(n²); DetBareiss, DetLU
//	and DetRat O(n³).
package matrix
