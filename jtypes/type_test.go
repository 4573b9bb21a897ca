// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtypes

import "testing"

func TestLookup(t *testing.T) {
	for _, test := range []struct {
		name string
		want Type
	}{
		{"int", Typ[Int]},
		{"boolean", Typ[Boolean]},
		{"Integer", Boxed[IntegerBox]},
		{"java.lang.Character", Boxed[CharacterBox]},
		{"Number", Number},
		{"java.lang.Object", Object},
		{"String", nil},
	} {
		got := Lookup(test.name)
		if got != test.want {
			t.Errorf("Lookup(%q) = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestTypeNames(t *testing.T) {
	rec := NewRecord("RecordInt", &Field{Name: "source", Type: Typ[Int]})
	for _, test := range []struct {
		typ         Type
		str, simple string
	}{
		{Typ[Double], "double", "double"},
		{Boxed[LongBox], "java.lang.Long", "Long"},
		{Number, "java.lang.Number", "Number"},
		{Object, "java.lang.Object", "Object"},
		{rec, "RecordInt", "RecordInt"},
	} {
		if got := test.typ.String(); got != test.str {
			t.Errorf("String() = %q, want %q", got, test.str)
		}
		if got := test.typ.SimpleName(); got != test.simple {
			t.Errorf("SimpleName() = %q, want %q", got, test.simple)
		}
	}
}

func TestIdentical(t *testing.T) {
	a1, a1bis, a2 := NewNamed("A1"), NewNamed("A1"), NewNamed("A2")
	if !Identical(a1, a1bis) {
		t.Error("user types with the same name are not identical")
	}
	if Identical(a1, a2) {
		t.Error("A1 and A2 are identical")
	}
	if Identical(Typ[Int], Boxed[IntegerBox]) {
		t.Error("int and Integer are identical")
	}
	if Identical(Object, NewNamed("Object")) {
		t.Error("java.lang.Object and a user type named Object are identical")
	}
}

func TestIsReferenceSupertypeOf(t *testing.T) {
	a := NewNamed("A")
	for _, test := range []struct {
		s    *Reference
		t    Type
		want bool
	}{
		{Object, Typ[Int], true},
		{Object, a, true},
		{Number, Boxed[IntegerBox], true},
		{Number, Boxed[DoubleBox], true},
		{Number, Number, true},
		{Number, Boxed[CharacterBox], false},
		{Number, Boxed[BooleanBox], false},
		{Number, Typ[Int], false}, // primitives must be boxed first
		{Number, Object, false},
		{a, a, true},
		{a, NewNamed("B"), false},
		{a, Object, false},
	} {
		if got := IsReferenceSupertypeOf(test.s, test.t); got != test.want {
			t.Errorf("IsReferenceSupertypeOf(%s, %s) = %t, want %t", test.s, test.t, got, test.want)
		}
	}
}

func TestSetFieldsPanicsOnClass(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetFields on a class did not panic")
		}
	}()
	NewNamed("A").SetFields(nil)
}

func TestIsReference(t *testing.T) {
	if IsReference(Typ[Char]) || IsReference(nil) {
		t.Error("IsReference holds for a primitive or nil")
	}
	if !IsReference(Boxed[CharacterBox]) || !IsReference(NewRecord("R")) {
		t.Error("IsReference does not hold for a reference type")
	}
}
