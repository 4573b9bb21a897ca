// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package classify decides whether each case label of a switch is
// applicable to the selector type, and whether an applicable pattern
// is unconditional for it.
package classify

import (
	"github.com/patternlint/patternlint/jtypes"
	"github.com/patternlint/patternlint/pattern"
)

// ProblemKind identifies why a label is not applicable.
type ProblemKind int

const (
	// IncompatibleType: the label's type or constant kind does not
	// convert to the selector type.
	IncompatibleType ProblemKind = iota

	// ConstantRequired: a constant label is not a compile-time
	// constant of primitive type.
	ConstantRequired

	// InvalidNullConversion: a null label on a primitive selector.
	InvalidNullConversion

	// ComponentCount: a record pattern has the wrong number of
	// component patterns.
	ComponentCount
)

// A Problem is a reason a label, or a component of a record pattern,
// is not applicable.
type Problem struct {
	Kind ProblemKind
	Path []int // component path within a record pattern; nil for the label itself

	// Found and Required are the presentable types of an
	// IncompatibleType problem. If Cast is set the problem is a
	// failed cast from Required (the tested value) to Found (the
	// pattern type), and is rendered as such.
	Found, Required string
	Cast            bool

	// Expected and Actual are the component counts of a
	// ComponentCount problem.
	Expected, Actual int
}

// A Result is the classification of one label.
type Result struct {
	Label pattern.Label

	// Unconditional reports that the label is an unguarded type
	// pattern that matches every non-null value of the selector.
	Unconditional bool

	Problems []Problem
}

// OK reports whether the label is applicable.
func (r *Result) OK() bool { return len(r.Problems) == 0 }

// Classify classifies label against the selector type.
func Classify(selector jtypes.Type, label pattern.Label) *Result {
	res := &Result{Label: label}
	switch l := label.(type) {
	case *pattern.Constant:
		if p, ok := constant(selector, l); !ok {
			res.Problems = append(res.Problems, p)
		}
	case *pattern.TypeTest:
		if p, ok := typeTest(selector, l.Type); !ok {
			res.Problems = append(res.Problems, p)
		} else {
			res.Unconditional = !l.Guarded && Covers(l.Type, selector)
		}
	case *pattern.Record:
		res.Problems = record(selector, l, nil, res.Problems)
	case *pattern.Null:
		if !jtypes.IsReference(selector) {
			res.Problems = append(res.Problems, Problem{
				Kind:     InvalidNullConversion,
				Found:    "null",
				Required: selector.String(),
			})
		}
	case *pattern.Default:
	}
	return res
}

// ClassifyAll classifies every label of sw, in order.
func ClassifyAll(sw *pattern.Switch) []*Result {
	results := make([]*Result, len(sw.Labels))
	for i, l := range sw.Labels {
		results[i] = Classify(sw.Selector, l)
	}
	return results
}

func constant(selector jtypes.Type, c *pattern.Constant) (Problem, bool) {
	if c.NonConstant {
		return Problem{Kind: ConstantRequired}, false
	}
	if AcceptsConstant(selector, c.Value) {
		return Problem{}, true
	}
	return Problem{
		Kind:     IncompatibleType,
		Found:    c.Value.Kind().String(),
		Required: selector.String(),
	}, false
}

// AcceptsConstant reports whether a case constant v is assignable to
// the selector type. A primitive selector admits constants of its own
// kind, of a kind that widens to it, and byte, short, char or int
// constants whose value is representable in a byte, short or char
// selector. A wrapper selector admits only constants of exactly its
// unboxed kind. No other selector admits primitive constants.
func AcceptsConstant(selector jtypes.Type, v jtypes.Value) bool {
	k := v.Kind()
	switch s := selector.(type) {
	case *jtypes.Primitive:
		k0 := s.Kind()
		if jtypes.SameOrWidens(k, k0) {
			return true
		}
		return narrowable(k) && k0 != jtypes.Int && narrowable(k0) && jtypes.Representable(v, k0)
	case *jtypes.Wrapper:
		return k == s.Unboxed()
	}
	return false
}

// narrowable reports whether k takes part in the implicit narrowing
// of constants.
func narrowable(k jtypes.PrimitiveKind) bool {
	switch k {
	case jtypes.Byte, jtypes.Short, jtypes.Char, jtypes.Int:
		return true
	}
	return false
}

// typeTest reports whether a type pattern for t is applicable to a
// value of static type selector.
func typeTest(selector, t jtypes.Type) (Problem, bool) {
	if Applicable(selector, t) {
		return Problem{}, true
	}
	p := Problem{Kind: IncompatibleType, Found: t.String(), Required: selector.String()}
	_, primPattern := t.(*jtypes.Primitive)
	_, primSelector := selector.(*jtypes.Primitive)
	if primPattern || primSelector {
		p.Cast = true
	}
	return p, false
}

// Applicable reports whether a type pattern testing t may be applied
// to a value of static type selector.
func Applicable(selector, t jtypes.Type) bool {
	switch t := t.(type) {
	case *jtypes.Primitive:
		k := t.Kind()
		switch s := selector.(type) {
		case *jtypes.Primitive, *jtypes.Wrapper:
			k0, _ := jtypes.PrimitiveOf(s)
			return jtypes.SameOrWidens(k0, k)
		case *jtypes.Reference:
			switch s.Kind() {
			case jtypes.ObjectRef:
				return true
			case jtypes.NumberRef:
				return jtypes.IsNumeric(k)
			}
		}
		return false

	case *jtypes.Wrapper:
		switch s := selector.(type) {
		case *jtypes.Primitive:
			return t.Unboxed() == s.Kind()
		case *jtypes.Wrapper:
			return t.Kind() == s.Kind()
		case *jtypes.Reference:
			return jtypes.IsReferenceSupertypeOf(s, t)
		}
		return false

	case *jtypes.Reference:
		switch t.Kind() {
		case jtypes.ObjectRef:
			return true
		case jtypes.NumberRef:
			return jtypes.IsNumericType(selector) || jtypes.Identical(selector, jtypes.Object)
		}
		// A user type.
		switch s := selector.(type) {
		case *jtypes.Reference:
			switch s.Kind() {
			case jtypes.ObjectRef:
				return true
			case jtypes.NamedRef:
				// Interfaces and classes may be cast to one
				// another; records are final.
				if s.IsRecord() || t.IsRecord() {
					return jtypes.Identical(s, t)
				}
				return true
			}
		}
		return false
	}
	return false
}

// Covers reports whether a type pattern for t matches every non-null
// value of static type selector: t is the selector type, a primitive
// type the selector widens to, the box of a primitive selector,
// Number for a numeric selector, or Object.
func Covers(t, selector jtypes.Type) bool {
	if jtypes.Identical(t, selector) {
		return true
	}
	switch t := t.(type) {
	case *jtypes.Primitive:
		s, ok := selector.(*jtypes.Primitive)
		return ok && jtypes.WidensTo(s.Kind(), t.Kind())
	case *jtypes.Wrapper:
		s, ok := selector.(*jtypes.Primitive)
		return ok && s.Kind() == t.Unboxed()
	case *jtypes.Reference:
		switch t.Kind() {
		case jtypes.ObjectRef:
			return true
		case jtypes.NumberRef:
			return jtypes.IsNumericType(selector)
		}
	}
	return false
}

// record classifies a record pattern against a value of static type
// selector, appending problems for the pattern and its components.
func record(selector jtypes.Type, r *pattern.Record, path []int, probs []Problem) []Problem {
	if !recordApplicable(selector, r.Type) {
		return append(probs, Problem{
			Kind:     IncompatibleType,
			Path:     path,
			Found:    r.Type.String(),
			Required: selector.String(),
			Cast:     !jtypes.IsReference(selector),
		})
	}
	if n := r.Type.NumFields(); n != len(r.Components) {
		return append(probs, Problem{
			Kind:     ComponentCount,
			Path:     path,
			Required: r.Type.String(),
			Expected: n,
			Actual:   len(r.Components),
		})
	}
	for i, c := range r.Components {
		cpath := append(append([]int(nil), path...), i)
		ctype := r.Type.Field(i).Type
		switch c := c.(type) {
		case *pattern.TypeTest:
			if p, ok := typeTest(ctype, c.Type); !ok {
				p.Path = cpath
				probs = append(probs, p)
			}
		case *pattern.Record:
			probs = record(ctype, c, cpath, probs)
		}
	}
	return probs
}

func recordApplicable(selector jtypes.Type, rec *jtypes.Reference) bool {
	if !rec.IsRecord() {
		return false
	}
	s, ok := selector.(*jtypes.Reference)
	if !ok {
		return false
	}
	return s.Kind() == jtypes.ObjectRef || jtypes.Identical(s, rec) || (s.Kind() == jtypes.NamedRef && !s.IsRecord())
}

// RecordCovers reports whether the record pattern r, ignoring its
// guard, matches every non-null value of static type selector: its
// type is the selector type and every component pattern is
// unconditional for the declared component type. A record pattern
// never matches null, so it is never itself unconditional.
func RecordCovers(r *pattern.Record, selector jtypes.Type) bool {
	if !jtypes.Identical(r.Type, selector) || r.Type.NumFields() != len(r.Components) {
		return false
	}
	for i, c := range r.Components {
		ctype := r.Type.Field(i).Type
		switch c := c.(type) {
		case *pattern.TypeTest:
			if c.Guarded || !Covers(c.Type, ctype) {
				return false
			}
		case *pattern.Record:
			// A null component is remainder.
			if c.Guarded || !RecordCovers(c, ctype) {
				return false
			}
		default:
			return false
		}
	}
	return true
}
