// Package fixturegen generates labeled test fixtures: inputs paired with an
// expected answer that is known by construction, never by solving the input.
//
// What is inside?
//
//	• Determinant fixtures: a random diagonal matrix (det = product of the
//	  diagonal) scrambled by row additions (det unchanged) and row swaps
//	  (det negated), in integer or floating mode. Float entries sit on the
//	  printed decimal grid, so the printed matrix is exact.
//	• Range-count fixtures: distinct keys plus [a, b] queries, answered by
//	  the number of keys inside each interval.
//	• Sort fixtures: distinct values answered by their ascending order.
//	• Verification: every stored pair can be re-checked with independent
//	  reference computations (exact rational elimination, recount, sort).
//
// Guarantees:
//
//   - Reproducible: a job seed fixes every file; case i always uses its own
//     derived RNG stream, whatever the worker count.
//   - Eager validation: empty or unusable ranges fail before anything is
//     sampled or written.
//   - No silent overflow: integer fixtures whose entries or determinant leave
//     int64 are rejected, never emitted.
//
// Layout:
//
//	matrix/    — square dense storage, checked row operations, reference solvers
//	detgen/    — diagonal seeding, transform ops, determinant tracker, text format
//	rangegen/  — range-count fixtures
//	sortgen/   — sort fixtures
//	fixture/   — TestCase, Generator, per-case RNG streams
//	config/    — YAML/JSON job files
//	dataset/   — orchestrator, directory writer, verification
//	logging/   — zap logger construction
//	cmd/fixturegen — CLI: generate, verify, version
//
// Quick example:
//
//	diag(2, 3)       det  6
//	row0 += row1     det  6    [[2 3] [0 3]]
//	swap(0, 1)       det -6    [[0 3] [2 3]]
//
//	go run ./cmd/fixturegen generate --config tests/config.yaml
package fixturegen
