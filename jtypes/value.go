// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtypes

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Value is a folded compile-time constant of a primitive kind.
//
// Integral and char values are held exactly in an int64, float and
// double values in a float64 (a float value is always exactly
// representable as a float32). NaN, the infinities and both zeros
// are ordinary, distinct values.
type Value struct {
	kind PrimitiveKind
	i    int64
	f    float64
	b    bool
}

// MakeBool returns the boolean constant b.
func MakeBool(b bool) Value { return Value{kind: Boolean, b: b} }

// MakeInt returns the integral constant x of kind k, narrowed to k
// with Java's two's-complement truncation.
func MakeInt(k PrimitiveKind, x int64) Value {
	if !k.Integral() {
		panic(fmt.Sprintf("MakeInt: non-integral kind %s", k))
	}
	return Value{kind: k, i: truncate(k, x)}
}

// MakeFloat returns the floating constant x of kind k. A float
// constant is rounded to float32 precision.
func MakeFloat(k PrimitiveKind, x float64) Value {
	switch k {
	case Float:
		return Value{kind: Float, f: float64(float32(x))}
	case Double:
		return Value{kind: Double, f: x}
	}
	panic(fmt.Sprintf("MakeFloat: non-floating kind %s", k))
}

// Kind returns the primitive kind of the constant.
func (v Value) Kind() PrimitiveKind { return v.kind }

// Bool returns the payload of a boolean constant.
func (v Value) Bool() bool { return v.b }

// Int64 returns the payload of an integral or char constant.
func (v Value) Int64() (int64, bool) { return v.i, v.kind.Integral() }

// Float64 returns the payload of a float or double constant.
func (v Value) Float64() (float64, bool) { return v.f, v.kind.Floating() }

// IsValid reports whether v holds a constant.
func (v Value) IsValid() bool { return v.kind.Valid() }

func (v Value) String() string {
	switch v.kind {
	case Boolean:
		return strconv.FormatBool(v.b)
	case Char:
		if v.i >= 0x20 && v.i < 0x7f && v.i != '\'' && v.i != '\\' {
			return "'" + string(rune(v.i)) + "'"
		}
		return fmt.Sprintf("'\\u%04x'", v.i)
	case Byte, Short, Int:
		return strconv.FormatInt(v.i, 10)
	case Long:
		return strconv.FormatInt(v.i, 10) + "L"
	case Float, Double:
		switch {
		case math.IsNaN(v.f):
			return "NaN"
		case math.IsInf(v.f, 1):
			return "Infinity"
		case math.IsInf(v.f, -1):
			return "-Infinity"
		}
		bits := 64
		if v.kind == Float {
			bits = 32
		}
		s := formatFloat(v.f, bits)
		if v.kind == Float {
			s += "f"
		}
		return s
	}
	return "<invalid>"
}

// formatFloat spells a finite f as Java's Double.toString and
// Float.toString do: plain decimals for magnitudes in [1e-3, 1e7),
// otherwise "1.0E10" style, always with a fraction digit.
func formatFloat(f float64, bits int) string {
	if abs := math.Abs(f); abs == 0 || abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, bits)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(f, 'e', -1, bits) // e.g. "1e+10", "-1.5e-05"
	mant, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	sign := ""
	if exp[0] == '-' {
		sign = "-"
	}
	return mant + "E" + sign + strings.TrimLeft(exp[1:], "0")
}

// IdenticalValues reports whether a and b denote the same runtime
// value once both are converted to a common kind: integral values
// compare numerically, floating values compare by bit pattern (so
// 0.0 and -0.0 differ, and NaN equals NaN). Booleans never equal
// numbers.
func IdenticalValues(a, b Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return false
	}
	if (a.kind == Boolean) != (b.kind == Boolean) {
		return false
	}
	switch {
	case a.kind == Boolean:
		return a.b == b.b
	case a.kind.Integral() && b.kind.Integral():
		return a.i == b.i
	}
	return floatBits(a.asFloat()) == floatBits(b.asFloat())
}

func (v Value) asFloat() float64 {
	if v.kind.Integral() {
		return float64(v.i)
	}
	return v.f
}

func floatBits(f float64) uint64 {
	if math.IsNaN(f) {
		return 0x7ff8000000000001 // canonical NaN
	}
	return math.Float64bits(f)
}

var integralRange = [numKinds][2]int64{
	Byte:  {math.MinInt8, math.MaxInt8},
	Short: {math.MinInt16, math.MaxInt16},
	Char:  {0, math.MaxUint16},
	Int:   {math.MinInt32, math.MaxInt32},
	Long:  {math.MinInt64, math.MaxInt64},
}

// Representable reports whether the integral constant v lies within
// the range of the integral kind k. It is the test Java applies when
// a byte, short, char or int constant is assigned to a narrower
// variable.
func Representable(v Value, k PrimitiveKind) bool {
	if !v.kind.Integral() || !k.Integral() {
		return false
	}
	r := integralRange[k]
	return r[0] <= v.i && v.i <= r[1]
}

func truncate(k PrimitiveKind, x int64) int64 {
	switch k {
	case Byte:
		return int64(int8(x))
	case Short:
		return int64(int16(x))
	case Char:
		return int64(uint16(x))
	case Int:
		return int64(int32(x))
	}
	return x
}

// Convert applies a Java casting conversion to v. It reports false if
// no primitive conversion exists (boolean to or from a number).
func Convert(v Value, k PrimitiveKind) (Value, bool) {
	if !v.IsValid() || !k.Valid() {
		return Value{}, false
	}
	if (v.kind == Boolean) != (k == Boolean) {
		return Value{}, false
	}
	switch {
	case k == Boolean:
		return v, true
	case k.Floating():
		return MakeFloat(k, v.asFloat()), true
	case v.kind.Integral():
		return MakeInt(k, v.i), true
	}
	// Floating to integral: NaN is 0, out-of-range values saturate
	// to int or long first, then truncate.
	f := v.f
	var x int64
	switch {
	case math.IsNaN(f):
		x = 0
	case k == Long:
		x = saturate(f, math.MinInt64, math.MaxInt64)
	default:
		x = saturate(f, math.MinInt32, math.MaxInt32)
	}
	return MakeInt(k, x), true
}

func saturate(f float64, lo, hi int64) int64 {
	switch {
	case f <= float64(lo):
		return lo
	case f >= float64(hi):
		return hi
	}
	return int64(f)
}

// promote returns the kind of a binary arithmetic expression whose
// operands have kinds a and b.
func promote(a, b PrimitiveKind) PrimitiveKind {
	switch {
	case a == Double || b == Double:
		return Double
	case a == Float || b == Float:
		return Float
	case a == Long || b == Long:
		return Long
	}
	return Int
}
