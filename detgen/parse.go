// SPDX-License-Identifier: MIT
// Package: detgen
//
// parse.go — inverse of format.go, used by fixture verification and tests.
// Any whitespace separates fields; trailing whitespace is ignored.

package detgen

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/fixturegen/matrix"
)

// ParseMatrix reads "<n> e00 e01 ... e(n-1)(n-1)" into an n×n matrix.
//
// Errors:
//   - ErrMalformed on a bad header, a bad number or a wrong field count.
//
// Complexity: O(n²).
func ParseMatrix[T matrix.Element](text string) (*matrix.Dense[T], error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, detgenErrorf(methodParse, ErrMalformed, "empty input")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < minMatrixSize {
		return nil, detgenErrorf(methodParse, ErrMalformed, "header %q", fields[0])
	}
	if got := len(fields) - 1; got != n*n {
		return nil, detgenErrorf(methodParse, ErrMalformed, "n=%d needs %d entries, got %d", n, n*n, got)
	}

	m, err := matrix.NewDense[T](n)
	if err != nil {
		return nil, detgenErrorf(methodParse, err, "n=%d", n)
	}
	var (
		i int
		v T
	)
	for i = 0; i < n*n; i++ {
		if v, err = parseValue[T](fields[i+1]); err != nil {
			return nil, detgenErrorf(methodParse, ErrMalformed, "entry %d %q", i, fields[i+1])
		}
		_ = m.Set(i/n, i%n, v) // in range by construction
	}

	return m, nil
}

// ExactDet parses "<n> e00 ... e(n-1)(n-1)" with every entry read as an
// exact decimal and returns the determinant as a rational. Integer and
// float fixtures are both accepted.
//
// Errors:
//   - ErrMalformed as ParseMatrix.
//
// Complexity: O(n³) rational ops.
func ExactDet(text string) (*big.Rat, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, detgenErrorf(methodParse, ErrMalformed, "empty input")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < minMatrixSize {
		return nil, detgenErrorf(methodParse, ErrMalformed, "header %q", fields[0])
	}
	if got := len(fields) - 1; got != n*n {
		return nil, detgenErrorf(methodParse, ErrMalformed, "n=%d needs %d entries, got %d", n, n*n, got)
	}

	rows := make([][]*big.Rat, n)
	var i int
	for i = 0; i < n*n; i++ {
		if i%n == 0 {
			rows[i/n] = make([]*big.Rat, n)
		}
		v, ok := parseDecimal(fields[i+1])
		if !ok {
			return nil, detgenErrorf(methodParse, ErrMalformed, "entry %d %q", i, fields[i+1])
		}
		rows[i/n][i%n] = v
	}
	det, err := matrix.DetRat(rows)
	if err != nil {
		return nil, detgenErrorf(methodParse, err, "n=%d", n)
	}

	return det, nil
}

// ParseExactScalar reads a single determinant value as an exact decimal.
//
// Errors:
//   - ErrMalformed unless text holds exactly one number.
func ParseExactScalar(text string) (*big.Rat, error) {
	fields := strings.Fields(text)
	if len(fields) != 1 {
		return nil, detgenErrorf(methodParse, ErrMalformed, "want one scalar, got %d fields", len(fields))
	}
	v, ok := parseDecimal(fields[0])
	if !ok {
		return nil, detgenErrorf(methodParse, ErrMalformed, "scalar %q", fields[0])
	}

	return v, nil
}

// parseDecimal accepts what ParseFloat accepts except Inf/NaN and fractions.
func parseDecimal(s string) (*big.Rat, bool) {
	if strings.Contains(s, "/") {
		return nil, false
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return nil, false
	}
	return new(big.Rat).SetString(s)
}

// ParseScalar reads a single determinant value.
//
// Errors:
//   - ErrMalformed unless text holds exactly one number.
func ParseScalar[T matrix.Element](text string) (T, error) {
	var zero T
	fields := strings.Fields(text)
	if len(fields) != 1 {
		return zero, detgenErrorf(methodParse, ErrMalformed, "want one scalar, got %d fields", len(fields))
	}
	v, err := parseValue[T](fields[0])
	if err != nil {
		return zero, detgenErrorf(methodParse, ErrMalformed, "scalar %q", fields[0])
	}

	return v, nil
}

// parseValue parses one field in the domain of T.
func parseValue[T matrix.Element](s string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int64:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	default:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	}
}
