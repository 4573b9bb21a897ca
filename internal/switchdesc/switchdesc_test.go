// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package switchdesc

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/patternlint/patternlint/jtypes"
	"github.com/patternlint/patternlint/pattern"
)

const sample = `release: "23"
types: [A1, A2]
records:
  RecordInt: [int source]
  Box: [RecordInt inner, Object other]
constants:
  BOXED: {type: Long, value: 1L}
  SMALL: {type: byte, value: "(byte) 3"}
  COMPUTED: {type: int}
switches:
  - name: testNull
    selector: Integer
    labels:
      - Integer i
      - null
  - name: testRecords
    selector: Box
    expression: true
    release: "21"
    labels:
      - Box(RecordInt(var x), Object o) b when b != null
      - Box(RecordInt(double x), Object s)
      - default
  - name: testConstants
    selector: char
    labels:
      - 'a'
      - 0x41
      - SMALL
      - BOXED
      - COMPUTED
`

func TestDecode(t *testing.T) {
	f, err := Decode("sample.yaml", []byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	if f.Release != "23" || len(f.Switches) != 3 {
		t.Fatalf("Decode: release %q, %d switches", f.Release, len(f.Switches))
	}

	var got []string
	for _, sw := range f.Switches {
		for _, l := range sw.Labels {
			got = append(got, sw.Name+": "+l.String())
		}
	}
	want := []string{
		"testNull: Integer i",
		"testNull: null",
		"testRecords: Box(RecordInt(int x), Object o) b",
		"testRecords: Box(RecordInt(double x), Object s)",
		"testRecords: default",
		"testConstants: 'a'",
		"testConstants: 0x41",
		"testConstants: SMALL",
		"testConstants: BOXED",
		"testConstants: COMPUTED",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}

	null := f.Switches[0]
	if null.Release != "23" || null.Line != 12 || !cmp.Equal(null.LabelLines, []int{14, 15}) {
		t.Errorf("testNull: release %q, line %d, label lines %v", null.Release, null.Line, null.LabelLines)
	}
	if got := null.LineOf(-1); got != 12 {
		t.Errorf("LineOf(-1) = %d, want 12", got)
	}

	recs := f.Switches[1]
	if recs.Release != "21" || !recs.Expression {
		t.Errorf("testRecords: release %q, expression %t", recs.Release, recs.Expression)
	}
	first := recs.Labels[0].(*pattern.Record)
	if !first.Guarded || first.Name != "b" {
		t.Errorf("first record pattern: guarded %t, name %q", first.Guarded, first.Name)
	}
	box := recs.Selector.(*jtypes.Reference)
	if !box.IsRecord() || box.NumFields() != 2 || box.Field(0).Type.String() != "RecordInt" {
		t.Errorf("Box declaration decoded as %v", box.Fields())
	}

	consts := f.Switches[2]
	for i, want := range []struct {
		value       string
		nonConstant bool
	}{
		{"'a'", false},
		{"65", false},
		{"3", false},
		{"<invalid>", true},
		{"<invalid>", true},
	} {
		c := consts.Labels[i].(*pattern.Constant)
		if c.Value.String() != want.value || c.NonConstant != want.nonConstant {
			t.Errorf("constant %d (%s) = %s (non-constant %t), want %s (%t)",
				i, c.Text, c.Value, c.NonConstant, want.value, want.nonConstant)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, test := range []struct {
		name, src, want string
	}{
		{"syntax", "switches: [", "a.yaml: yaml:"},
		{"no switches", "release: \"21\"\n", "a.yaml: switches is required"},
		{"bad release", "release: banana\nswitches: [{name: s, selector: int}]\n", `a.yaml: release: invalid language level "banana"`},
		{"bad type name", "types: [a-b]\nswitches: [{name: s, selector: int}]\n", `a.yaml: types[0]: "a-b" is not a Java identifier`},
		{"no name", "switches: [{selector: int}]\n", "a.yaml: switches[0].name is required"},
		{"unknown selector", "switches:\n  - name: s\n    selector: Foo\n", "a.yaml:3: unknown type Foo"},
		{"unknown pattern type", "switches:\n  - name: s\n    selector: Object\n    labels:\n      - Foo f\n", "a.yaml:5: switch s: unknown type Foo"},
		{"bad constant", "switches:\n  - name: s\n    selector: int\n    labels:\n      - 1 +\n", "a.yaml:5: switch s: invalid constant"},
		{"nested label", "switches:\n  - name: s\n    selector: int\n    labels:\n      - [1]\n", "a.yaml:5: switch s: label 0: want a scalar, found a sequence"},
		{"redeclared", "types: [Integer]\nswitches: [{name: s, selector: int}]\n", "a.yaml:1: type Integer redeclares a predeclared type"},
		{"bad component", "records:\n  R: [int]\nswitches: [{name: s, selector: R}]\n", `a.yaml:2: record R: component "int" is not of the form "Type name"`},
		{"narrowing constant", "constants:\n  B: {type: byte, value: 300}\nswitches: [{name: s, selector: int}]\n", "a.yaml:2: constant B: cannot assign int value 300 to byte"},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Decode("a.yaml", []byte(test.src))
			if err == nil || !strings.HasPrefix(err.Error(), test.want) {
				t.Errorf("Decode: err = %v, want prefix %q", err, test.want)
			}
		})
	}
}

func TestParseLabel(t *testing.T) {
	rec := jtypes.NewRecord("RecordInt", &jtypes.Field{Name: "source", Type: jtypes.Typ[jtypes.Int]})
	sc := &scope{
		types:     map[string]jtypes.Type{"RecordInt": rec, "A1": jtypes.NewNamed("A1")},
		constants: map[string]*pattern.Constant{},
	}
	for _, test := range []struct {
		text    string
		want    string // pattern.Label.String of the result
		guarded bool
	}{
		{"default", "default", false},
		{" null ", "null", false},
		{"Integer i", "Integer i", false},
		{"java.lang.Number n", "Number n", false},
		{"A1 a when a.ok()", "A1 a", true},
		{"RecordInt(int x)", "RecordInt(int x)", false},
		{"RecordInt(var x) r", "RecordInt(int x) r", false},
		{"RecordInt(RecordInt(int y) z) when (z != null)", "RecordInt(RecordInt(int y) z)", true},
		{"RecordInt()", "RecordInt()", false},
		{"1", "1", false},
		{"Integer.MAX_VALUE", "Integer.MAX_VALUE", false},
		{"(byte) 0", "(byte) 0", false},
		{"Long.MAX_VALUE - 1", "Long.MAX_VALUE - 1", false},
	} {
		l, err := sc.parseLabel(test.text)
		if err != nil {
			t.Errorf("parseLabel(%q): %v", test.text, err)
			continue
		}
		if got := l.String(); got != test.want {
			t.Errorf("parseLabel(%q) = %s, want %s", test.text, got, test.want)
		}
		if got := pattern.IsGuarded(l); got != test.guarded {
			t.Errorf("parseLabel(%q): guarded = %t", test.text, got)
		}
	}

	for _, text := range []string{
		"",
		"Integer(int x)",
		"Unknown(int x)",
		"Foo f",
		"var v",
		"RecordInt(int x",
		"RecordInt(1)",
		"RecordInt(int x) +",
		"1 when true",
	} {
		if l, err := sc.parseLabel(text); err == nil {
			t.Errorf("parseLabel(%q) = %v, want error", text, l)
		}
	}
}
