// SPDX-License-Identifier: MIT
// Package: detgen
//
// format.go — Formatter.
//
// Input text:
//
//	<n>\n
//	<e00>\t<e01>\t...\t\n      (n lines, n fields each)
//
// Every field is left-aligned and padded to a fixed width, then followed by a
// tab. Integer fields use Width; float fields use Width+Precision and print
// Precision decimals. The answer is a single scalar in the same notation
// without padding.

package detgen

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/fixturegen/fixture"
	"github.com/katalvlaran/fixturegen/matrix"
)

// Formatting defaults.
const (
	DefaultWidth     = 6
	DefaultPrecision = 3
)

// FormatOptions controls field width and decimal precision.
// Precision is ignored for int64 matrices.
type FormatOptions struct {
	Width     int
	Precision int
}

// DefaultFormatOptions returns {DefaultWidth, DefaultPrecision}.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{Width: DefaultWidth, Precision: DefaultPrecision}
}

// Format renders the matrix and its determinant as a fixture.
// Complexity: O(n²).
func Format[T matrix.Element](m *matrix.Dense[T], det T, opts FormatOptions) fixture.TestCase {
	return fixture.TestCase{
		Input:  FormatMatrix(m, opts),
		Answer: FormatScalar(det, opts),
	}
}

// FormatMatrix renders the header line and the n rows.
func FormatMatrix[T matrix.Element](m *matrix.Dense[T], opts FormatOptions) string {
	n := m.Size()
	var b strings.Builder
	b.WriteString(strconv.Itoa(n))
	b.WriteByte('\n')

	width := fieldWidth[T](opts)
	var (
		i, j int
		v    T
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = m.At(i, j) // indices are in range by construction
			field := formatValue(v, opts.Precision)
			b.WriteString(field)
			if pad := width - len(field); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			b.WriteByte('\t')
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// FormatScalar renders the determinant: an integer literal or a fixed decimal.
func FormatScalar[T matrix.Element](v T, opts FormatOptions) string {
	return formatValue(v, opts.Precision)
}

// fieldWidth returns Width for int64 and Width+Precision for float64.
func fieldWidth[T matrix.Element](opts FormatOptions) int {
	var zero T
	if _, isFloat := any(zero).(float64); isFloat {
		return opts.Width + opts.Precision
	}
	return opts.Width
}

// formatValue prints one element. Negative zero is printed as zero.
func formatValue[T matrix.Element](v T, precision int) string {
	switch x := any(v).(type) {
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		s := strconv.FormatFloat(x, 'f', precision, 64)
		if isNegativeZeroText(s) {
			s = s[1:]
		}
		return s
	}

	return ""
}

// isNegativeZeroText reports "-0", "-0.000" and the like, produced when a tiny
// negative value rounds to zero.
func isNegativeZeroText(s string) bool {
	if !strings.HasPrefix(s, "-") {
		return false
	}
	return strings.Trim(s[1:], "0.") == ""
}
