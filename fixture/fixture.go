// Package fixture defines the unit every generator emits and the RNG
// plumbing shared by all generators.
//
// A TestCase is the (input, expected-answer) text pair for one fixture. It is
// immutable once produced and handed as-is to a writer.
package fixture

import "math/rand"

// TestCase is one labeled fixture: Input is the artifact fed to the engine
// under test, Answer is the verified expected output.
type TestCase struct {
	Input  string
	Answer string
}

// Generator produces one TestCase from a caller-owned RNG.
// Implementations must not keep state between calls other than their
// read-only configuration, so cases are independent.
type Generator interface {
	Generate(rng *rand.Rand) (TestCase, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(rng *rand.Rand) (TestCase, error)

// Generate calls f(rng).
func (f GeneratorFunc) Generate(rng *rand.Rand) (TestCase, error) { return f(rng) }
