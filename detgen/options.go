// SPDX-License-Identifier: MIT
// Package: detgen
//
// options.go — functional options for Generator.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generation itself never panics.
//   • Later options override earlier ones.

package detgen

// genConfig aggregates the knobs that do not belong to the sampled ranges.
type genConfig struct {
	format FormatOptions
}

// Option customizes a Generator.
type Option func(*genConfig)

// newGenConfig applies opts over deterministic defaults.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{format: DefaultFormatOptions()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithWidth sets the minimum field width (before the precision share in
// float mode). Panics if w < 0.
func WithWidth(w int) Option {
	if w < 0 {
		panic("detgen: WithWidth(w<0)")
	}
	return func(c *genConfig) { c.format.Width = w }
}

// WithPrecision sets the number of decimals for float fixtures.
// Panics if p < 0.
func WithPrecision(p int) Option {
	if p < 0 {
		panic("detgen: WithPrecision(p<0)")
	}
	return func(c *genConfig) { c.format.Precision = p }
}

// WithFormat replaces both width and precision.
// Panics on negative values.
func WithFormat(f FormatOptions) Option {
	if f.Width < 0 || f.Precision < 0 {
		panic("detgen: WithFormat(negative width/precision)")
	}
	return func(c *genConfig) { c.format = f }
}
