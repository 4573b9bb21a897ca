// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dominance finds case labels that can never be selected
// because an earlier label of the same switch already accepts every
// value they accept.
package dominance

import (
	"github.com/patternlint/patternlint/internal/classify"
	"github.com/patternlint/patternlint/jtypes"
	"github.com/patternlint/patternlint/pattern"
)

// Kind is the kind of a Finding.
type Kind int

const (
	// Dominated: the label is unreachable because of label By.
	Dominated Kind = iota

	// DuplicateUnconditional: the label is unconditional, and label
	// By already made the switch total without dominating it.
	DuplicateUnconditional
)

func (k Kind) String() string {
	switch k {
	case Dominated:
		return "Dominated"
	case DuplicateUnconditional:
		return "DuplicateUnconditional"
	}
	return "Kind(?)"
}

// A Finding reports that label Label is dominated by label By.
type Finding struct {
	Kind  Kind
	Label int
	By    int
}

// Compute returns the dominance findings for the classified labels of
// a switch over selector, in label order. Labels that failed
// classification neither dominate nor are dominated.
func Compute(selector jtypes.Type, labels []*classify.Result) []Finding {
	var findings []Finding
	for i, res := range labels {
		if !res.OK() {
			continue
		}
		if f, ok := dominator(selector, labels, i); ok {
			findings = append(findings, f)
		}
	}
	return findings
}

// dominator returns the finding for label i, if any.
func dominator(selector jtypes.Type, labels []*classify.Result, i int) (Finding, bool) {
	li := labels[i]
	trueAt, falseAt := -1, -1
	for j, lj := range labels[:i] {
		if !lj.OK() {
			continue
		}
		switch x := li.Label.(type) {
		case *pattern.Null:
			if _, ok := lj.Label.(*pattern.Null); ok {
				return Finding{Dominated, i, j}, true
			}

		case *pattern.Default:
			if _, ok := lj.Label.(*pattern.Default); ok {
				return Finding{Dominated, i, j}, true
			}

		case *pattern.Constant:
			switch y := lj.Label.(type) {
			case *pattern.Constant:
				if jtypes.IdenticalValues(x.Value, y.Value) {
					return Finding{Dominated, i, j}, true
				}
			case *pattern.TypeTest:
				// Guarded patterns dominate constants too.
				if AcceptsConstant(y.Type, x.Value, selector) {
					return Finding{Dominated, i, j}, true
				}
			}

		case *pattern.TypeTest, *pattern.Record:
			switch y := lj.Label.(type) {
			case *pattern.Constant:
				if v := y.Value; v.Kind() == jtypes.Boolean {
					if v.Bool() {
						trueAt = j
					} else {
						falseAt = j
					}
				}
			case *pattern.TypeTest, *pattern.Record:
				if pattern.IsGuarded(y) {
					continue
				}
				if Dominates(y, x) {
					return Finding{Dominated, i, j}, true
				}
				if lj.Unconditional && li.Unconditional {
					return Finding{DuplicateUnconditional, i, j}, true
				}
			}
		}
	}
	if li.Unconditional && trueAt >= 0 && falseAt >= 0 {
		return Finding{DuplicateUnconditional, i, max(trueAt, falseAt)}, true
	}
	return Finding{}, false
}

// AcceptsConstant reports whether a type pattern testing t accepts the
// constant v once v has been converted to the selector type.
//
// A wrapper pattern only accepts constants whose own kind is the one
// it unboxes to: on an int selector, Integer c accepts 1 but not 'a'.
func AcceptsConstant(t jtypes.Type, v jtypes.Value, selector jtypes.Type) bool {
	k := v.Kind()
	if sk, ok := jtypes.PrimitiveOf(selector); ok {
		k = sk
	}
	switch t := t.(type) {
	case *jtypes.Primitive:
		return jtypes.SameOrWidens(k, t.Kind())
	case *jtypes.Wrapper:
		return t.Unboxed() == v.Kind()
	case *jtypes.Reference:
		switch t.Kind() {
		case jtypes.ObjectRef:
			return true
		case jtypes.NumberRef:
			return jtypes.IsNumeric(k)
		}
	}
	return false
}

// Dominates reports whether the unguarded pattern j accepts every value
// accepted by the pattern i, judging by the pattern types alone. Both
// must be a *pattern.TypeTest or a *pattern.Record.
func Dominates(j, i pattern.Label) bool {
	switch j := j.(type) {
	case *pattern.TypeTest:
		switch i := i.(type) {
		case *pattern.TypeTest:
			return TypeCovers(j.Type, i.Type)
		case *pattern.Record:
			return TypeCovers(j.Type, i.Type)
		}
	case *pattern.Record:
		if i, ok := i.(*pattern.Record); ok {
			return recordDominates(j, i)
		}
	}
	return false
}

// TypeCovers reports whether a type pattern testing tj matches every
// value a type pattern testing ti matches.
//
// A primitive pattern covers the same kind and every kind that widens
// to it. A wrapper pattern covers exactly its own class and the
// primitive it unboxes to; it does not follow the widening graph. No
// primitive pattern covers a wrapper.
func TypeCovers(tj, ti jtypes.Type) bool {
	switch tj := tj.(type) {
	case *jtypes.Primitive:
		if ti, ok := ti.(*jtypes.Primitive); ok {
			return jtypes.SameOrWidens(ti.Kind(), tj.Kind())
		}
		return false
	case *jtypes.Wrapper:
		switch ti := ti.(type) {
		case *jtypes.Primitive:
			return tj.Unboxed() == ti.Kind()
		case *jtypes.Wrapper:
			return tj.Kind() == ti.Kind()
		}
		return false
	case *jtypes.Reference:
		switch tj.Kind() {
		case jtypes.ObjectRef:
			return true
		case jtypes.NumberRef:
			return jtypes.IsNumericType(ti)
		}
		return jtypes.Identical(tj, ti)
	}
	return false
}

// recordDominates reports whether record pattern j dominates record
// pattern i: they deconstruct the same record class and, at every
// component path of j, j's component pattern covers i's.
func recordDominates(j, i *pattern.Record) bool {
	if !jtypes.Identical(j.Type, i.Type) || len(j.Components) != len(i.Components) {
		return false
	}
	for _, c := range pattern.Expand(j) {
		ci := pattern.ComponentAt(i, c.Path)
		if ci == nil {
			return false
		}
		switch cj := c.Label.(type) {
		case *pattern.TypeTest:
			if !Dominates(cj, ci) {
				return false
			}
		case *pattern.Record:
			// Components of cj are visited at their own paths.
			ri, ok := ci.(*pattern.Record)
			if !ok || !jtypes.Identical(cj.Type, ri.Type) || len(cj.Components) != len(ri.Components) {
				return false
			}
		}
	}
	return true
}
