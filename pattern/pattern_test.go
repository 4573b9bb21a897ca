// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/patternlint/patternlint/jtypes"
	"github.com/patternlint/patternlint/pattern"
)

func records() (point, line *jtypes.Reference) {
	point = jtypes.NewRecord("Point",
		&jtypes.Field{Name: "x", Type: jtypes.Typ[jtypes.Int]},
		&jtypes.Field{Name: "y", Type: jtypes.Boxed[jtypes.DoubleBox]})
	line = jtypes.NewRecord("Line",
		&jtypes.Field{Name: "from", Type: point},
		&jtypes.Field{Name: "to", Type: point})
	return
}

func TestLabelString(t *testing.T) {
	point, line := records()
	for _, test := range []struct {
		label pattern.Label
		want  string
	}{
		{&pattern.Constant{Value: jtypes.MakeInt(jtypes.Long, 1)}, "1L"},
		{&pattern.Constant{Value: jtypes.MakeInt(jtypes.Int, 1), Text: "ONE"}, "ONE"},
		{&pattern.TypeTest{Type: jtypes.Boxed[jtypes.IntegerBox], Name: "i"}, "Integer i"},
		{&pattern.TypeTest{Type: jtypes.Typ[jtypes.Float], Name: "c", Guarded: true}, "float c"},
		{&pattern.Null{}, "null"},
		{&pattern.Default{}, "default"},
		{&pattern.Record{
			Type: line,
			Components: []pattern.Label{
				&pattern.Record{Type: point, Components: []pattern.Label{
					&pattern.TypeTest{Type: jtypes.Typ[jtypes.Int], Name: "x"},
					&pattern.TypeTest{Type: jtypes.Typ[jtypes.Double], Name: "y"},
				}},
				&pattern.TypeTest{Type: jtypes.Object, Name: "o"},
			},
			Name: "l",
		}, "Line(Point(int x, double y), Object o) l"},
	} {
		if got := test.label.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}

func TestExpand(t *testing.T) {
	point, line := records()
	x := &pattern.TypeTest{Type: jtypes.Typ[jtypes.Int], Name: "x"}
	y := &pattern.TypeTest{Type: jtypes.Typ[jtypes.Double], Name: "y"}
	from := &pattern.Record{Type: point, Components: []pattern.Label{x, y}}
	to := &pattern.TypeTest{Type: point, Name: "p"}
	root := &pattern.Record{Type: line, Components: []pattern.Label{from, to}}

	type flat struct {
		Path  []int
		Label string
		Type  string
	}
	var got []flat
	for _, c := range pattern.Expand(root) {
		got = append(got, flat{c.Path, c.Label.String(), c.Type.String()})
	}
	want := []flat{
		{[]int{0}, "Point(int x, double y)", "Point"},
		{[]int{0, 0}, "int x", "int"},
		{[]int{0, 1}, "double y", "java.lang.Double"},
		{[]int{1}, "Point p", "Point"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand mismatch (-want +got):\n%s", diff)
	}

	for _, c := range pattern.Expand(root) {
		if l := pattern.ComponentAt(root, c.Path); l != c.Label {
			t.Errorf("ComponentAt(%v) = %v, want %v", c.Path, l, c.Label)
		}
	}
	if l := pattern.ComponentAt(root, []int{1, 0}); l != nil {
		t.Errorf("ComponentAt([1 0]) = %v, want nil", l)
	}
}

func TestExpandExtraComponent(t *testing.T) {
	point, _ := records()
	r := &pattern.Record{Type: point, Components: []pattern.Label{
		&pattern.TypeTest{Type: jtypes.Typ[jtypes.Int]},
		&pattern.TypeTest{Type: jtypes.Typ[jtypes.Double]},
		&pattern.TypeTest{Type: jtypes.Typ[jtypes.Long]},
	}}
	comps := pattern.Expand(r)
	if len(comps) != 3 || comps[2].Type != nil {
		t.Errorf("Expand of a record pattern with an extra component = %v", comps)
	}
}

func TestValidate(t *testing.T) {
	point, _ := records()
	for _, test := range []struct {
		sw      *pattern.Switch
		wantErr bool
	}{
		{&pattern.Switch{Selector: jtypes.Typ[jtypes.Int], Labels: []pattern.Label{&pattern.Default{}}}, false},
		{&pattern.Switch{Labels: []pattern.Label{&pattern.Default{}}}, true},
		{&pattern.Switch{Selector: jtypes.Typ[jtypes.Int], Labels: []pattern.Label{nil}}, true},
		{&pattern.Switch{Selector: jtypes.Typ[jtypes.Int], Labels: []pattern.Label{&pattern.Constant{Text: "X"}}}, true},
		{&pattern.Switch{Selector: jtypes.Typ[jtypes.Int], Labels: []pattern.Label{&pattern.Constant{Text: "X", NonConstant: true}}}, false},
		{&pattern.Switch{Selector: point, Labels: []pattern.Label{
			&pattern.Record{Type: point, Components: []pattern.Label{&pattern.Null{}}},
		}}, true},
	} {
		err := test.sw.Validate()
		if (err != nil) != test.wantErr {
			t.Errorf("Validate(%v) = %v, want error: %t", test.sw.Labels, err, test.wantErr)
		}
	}
}
