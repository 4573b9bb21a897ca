// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtypes

import (
	"math"
	"testing"
)

func TestParseLiteral(t *testing.T) {
	for _, test := range []struct {
		text string
		kind PrimitiveKind
		str  string
	}{
		{"1", Int, "1"},
		{"0x1fL", Long, "31L"},
		{"0xFFFFFFFF", Int, "-1"},
		{"0b101", Int, "5"},
		{"017", Int, "15"},
		{"1_000_000", Int, "1000000"},
		{"-2147483648", Int, "-2147483648"},
		{"-9223372036854775808L", Long, "-9223372036854775808L"},
		{"'a'", Char, "'a'"},
		{`'A'`, Char, "'A'"},
		{`'\n'`, Char, `'\u000a'`},
		{"(char) 65", Char, "'A'"},
		{"(byte) 0", Byte, "0"},
		{"(byte) 200", Byte, "-56"},
		{"(short) -1", Short, "-1"},
		{"(int) 3.9", Int, "3"},
		{"(int) Double.NaN", Int, "0"},
		{"(long) 1e300", Long, "9223372036854775807L"},
		{"1.5f", Float, "1.5f"},
		{"-0.0f", Float, "-0.0f"},
		{"1e3", Double, "1000.0"},
		{"2d", Double, "2.0"},
		{"0x1p3", Double, "8.0"},
		{"0x1p3f", Float, "8.0f"},
		{".5", Double, "0.5"},
		{"1e10", Double, "1.0E10"},
		{"1.5e-5", Double, "1.5E-5"},
		{"-2.5e300", Double, "-2.5E300"},
		{"1e7", Double, "1.0E7"},
		{"9999999.0", Double, "9999999.0"},
		{"0.001", Double, "0.001"},
		{"1e20f", Float, "1.0E20f"},
		{"Double.MAX_VALUE", Double, "1.7976931348623157E308"},
		{"Float.NaN", Float, "NaN"},
		{"Double.NEGATIVE_INFINITY", Double, "-Infinity"},
		{"java.lang.Byte.MAX_VALUE", Byte, "127"},
		{"Integer.MAX_VALUE + 1", Int, "-2147483648"},
		{"1 + 2L", Long, "3L"},
		{"- 5", Int, "-5"},
		{"-(-5)", Int, "5"},
		{"(1 + 2) - 4", Int, "-1"},
		{"true", Boolean, "true"},
	} {
		v, err := ParseLiteral(test.text)
		if err != nil {
			t.Errorf("ParseLiteral(%q): %v", test.text, err)
			continue
		}
		if v.Kind() != test.kind || v.String() != test.str {
			t.Errorf("ParseLiteral(%q) = %s %s, want %s %s", test.text, v.Kind(), v, test.kind, test.str)
		}
	}
}

func TestParseLiteralErrors(t *testing.T) {
	for _, text := range []string{
		"",
		"2147483648",
		"9223372036854775808L",
		"08",
		"0x",
		"1 +",
		"1)",
		"(1",
		"-true",
		"true + 1",
		"(boolean) 1",
		"Foo.BAR",
		"''",
		"'ab'",
	} {
		if v, err := ParseLiteral(text); err == nil {
			t.Errorf("ParseLiteral(%q) = %s, want error", text, v)
		}
	}
}

func TestIdenticalValues(t *testing.T) {
	nan := MakeFloat(Float, math.NaN())
	for _, test := range []struct {
		a, b Value
		want bool
	}{
		{MakeInt(Int, 1), MakeInt(Long, 1), true},
		{MakeInt(Char, 'a'), MakeInt(Int, 97), true},
		{MakeInt(Int, 1), MakeFloat(Double, 1), true},
		{MakeFloat(Float, 0), MakeFloat(Float, math.Copysign(0, -1)), false},
		{nan, nan, true},
		{nan, MakeFloat(Double, math.NaN()), true},
		{MakeFloat(Double, math.Inf(1)), MakeFloat(Float, math.Inf(1)), true},
		{MakeBool(true), MakeBool(true), true},
		{MakeBool(true), MakeBool(false), false},
		{MakeBool(true), MakeInt(Int, 1), false},
		{Value{}, Value{}, false},
	} {
		if got := IdenticalValues(test.a, test.b); got != test.want {
			t.Errorf("IdenticalValues(%s, %s) = %t, want %t", test.a, test.b, got, test.want)
		}
	}
}

func TestRepresentable(t *testing.T) {
	for _, test := range []struct {
		v    Value
		k    PrimitiveKind
		want bool
	}{
		{MakeInt(Int, 127), Byte, true},
		{MakeInt(Int, 128), Byte, false},
		{MakeInt(Int, -1), Char, false},
		{MakeInt(Char, math.MaxUint16), Short, false},
		{MakeInt(Char, 'a'), Byte, true},
		{MakeInt(Int, 1), Float, false},
		{MakeFloat(Double, 1), Int, false},
	} {
		if got := Representable(test.v, test.k); got != test.want {
			t.Errorf("Representable(%s, %s) = %t, want %t", test.v, test.k, got, test.want)
		}
	}
}

func TestMakeIntTruncates(t *testing.T) {
	if got, _ := MakeInt(Byte, 255).Int64(); got != -1 {
		t.Errorf("MakeInt(byte, 255) = %d, want -1", got)
	}
	if got, _ := MakeInt(Char, -1).Int64(); got != math.MaxUint16 {
		t.Errorf("MakeInt(char, -1) = %d, want 65535", got)
	}
	if got, _ := MakeFloat(Float, 0.1).Float64(); got != float64(float32(0.1)) {
		t.Errorf("MakeFloat(float, 0.1) = %v, not rounded to float32", got)
	}
}
