// SPDX-License-Identifier: MIT
// Package matrix - checked scalar arithmetic over Element.
//
// int64: two's-complement overflow is detected, never wrapped.
// float64: a result that is ±Inf or NaN is reported as overflow.
// Each helper returns (result, ok); ok == false means the result must not be used.

package matrix

import "math"

// CheckedAdd returns a+b and whether the sum is representable.
func CheckedAdd[T Element](a, b T) (T, bool) {
	switch x := any(a).(type) {
	case int64:
		y := any(b).(int64)
		s := x + y
		// Overflow iff both operands share a sign that the sum does not.
		if (x^s)&(y^s) < 0 {
			return a, false
		}
		return any(s).(T), true
	case float64:
		s := x + any(b).(float64)
		return any(s).(T), isFinite(s)
	}

	return a, false
}

// CheckedSub returns a-b and whether the difference is representable.
func CheckedSub[T Element](a, b T) (T, bool) {
	switch x := any(a).(type) {
	case int64:
		y := any(b).(int64)
		d := x - y
		// Overflow iff operands differ in sign and the result's sign differs from a.
		if (x^y)&(x^d) < 0 {
			return a, false
		}
		return any(d).(T), true
	case float64:
		d := x - any(b).(float64)
		return any(d).(T), isFinite(d)
	}

	return a, false
}

// CheckedMul returns a*b and whether the product is representable.
func CheckedMul[T Element](a, b T) (T, bool) {
	switch x := any(a).(type) {
	case int64:
		y := any(b).(int64)
		if x == 0 || y == 0 {
			return 0, true
		}
		if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
			return a, false
		}
		p := x * y
		if p/y != x {
			return a, false
		}
		return any(p).(T), true
	case float64:
		p := x * any(b).(float64)
		return any(p).(T), isFinite(p)
	}

	return a, false
}

// CheckedNeg returns -a; only math.MinInt64 is not negatable.
func CheckedNeg[T Element](a T) (T, bool) {
	switch x := any(a).(type) {
	case int64:
		if x == math.MinInt64 {
			return a, false
		}
		return any(-x).(T), true
	case float64:
		return any(-x).(T), isFinite(x)
	}

	return a, false
}

func isFinite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }
