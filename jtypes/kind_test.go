// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtypes

import "testing"

func TestWidensTo(t *testing.T) {
	want := map[PrimitiveKind][]PrimitiveKind{
		Byte:  {Short, Int, Long, Float, Double},
		Short: {Int, Long, Float, Double},
		Char:  {Int, Long, Float, Double},
		Int:   {Long, Float, Double},
		Long:  {Float, Double},
		Float: {Double},
	}
	for _, a := range Kinds {
		for _, b := range Kinds {
			expected := false
			for _, k := range want[a] {
				if k == b {
					expected = true
				}
			}
			if got := WidensTo(a, b); got != expected {
				t.Errorf("WidensTo(%s, %s) = %t, want %t", a, b, got, expected)
			}
		}
	}
}

func TestWideningIrreflexiveAndAsymmetric(t *testing.T) {
	for _, a := range Kinds {
		if WidensTo(a, a) {
			t.Errorf("WidensTo(%s, %s) holds", a, a)
		}
		if !SameOrWidens(a, a) {
			t.Errorf("SameOrWidens(%s, %s) does not hold", a, a)
		}
		for _, b := range Kinds {
			if WidensTo(a, b) && WidensTo(b, a) {
				t.Errorf("%s and %s widen to each other", a, b)
			}
		}
		if a != Boolean && (WidensTo(a, Boolean) || WidensTo(Boolean, a)) {
			t.Errorf("boolean is related to %s", a)
		}
	}
	if SameOrWidens(InvalidKind, InvalidKind) {
		t.Error("SameOrWidens(invalid, invalid) holds")
	}
}

func TestBoxing(t *testing.T) {
	seen := make(map[WrapperKind]bool)
	for _, k := range Kinds {
		w := Box(k)
		if !w.Valid() {
			t.Fatalf("Box(%s) is invalid", k)
		}
		if seen[w] {
			t.Errorf("Box(%s) = %s is not unique", k, w)
		}
		seen[w] = true
		if got := Unbox(w); got != k {
			t.Errorf("Unbox(Box(%s)) = %s", k, got)
		}
	}
	if got := Box(Char).String(); got != "Character" {
		t.Errorf("Box(char) = %s, want Character", got)
	}
	if got := Unbox(InvalidWrapper); got != InvalidKind {
		t.Errorf("Unbox(invalid) = %s", got)
	}
}

func TestIsNumeric(t *testing.T) {
	for _, k := range Kinds {
		want := k != Boolean && k != Char
		if got := IsNumeric(k); got != want {
			t.Errorf("IsNumeric(%s) = %t", k, got)
		}
	}
}
