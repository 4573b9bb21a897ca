// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exhaustive decides whether the labels of a switch cover
// every value of its selector type, and reports labels that make a
// switch total more than once.
package exhaustive

import (
	"github.com/patternlint/patternlint/internal/classify"
	"github.com/patternlint/patternlint/jtypes"
	"github.com/patternlint/patternlint/pattern"
)

// Kind is the kind of a Finding.
type Kind int

const (
	// BooleanAndDefaultConflict: both boolean values are enumerated
	// and there is a default label.
	BooleanAndDefaultConflict Kind = iota

	// UnconditionalAndDefault: there is an unconditional pattern and
	// a default label.
	UnconditionalAndDefault
)

func (k Kind) String() string {
	switch k {
	case BooleanAndDefaultConflict:
		return "BooleanAndDefaultConflict"
	case UnconditionalAndDefault:
		return "UnconditionalAndDefault"
	}
	return "Kind(?)"
}

// A Finding is attached to Label, the second of two labels that each
// make the switch total; the first is Other.
type Finding struct {
	Kind  Kind
	Label int
	Other int
}

// A Result is the outcome of Check.
type Result struct {
	Exhaustive bool
	Findings   []Finding
}

// Check reports whether the classified labels of a switch cover every
// value of selector. Labels that failed classification are ignored.
//
// A default label or an unconditional pattern covers everything. A
// boolean or Boolean selector is also covered by the constants true
// and false. Constants never cover any other selector. A wrapper
// selector is covered by a pattern of its primitive kind or of a kind
// it widens to. A record selector is covered by a record pattern whose
// components are all unconditional, together with a null label: a
// record pattern does not match null.
func Check(selector jtypes.Type, labels []*classify.Result) Result {
	var (
		defaultAt = -1
		uncondAt  = -1
		trueAt    = -1
		falseAt   = -1
		nullAt    = -1
		recordAt  = -1
		unboxAt   = -1
	)
	first := func(at *int, i int) {
		if *at < 0 {
			*at = i
		}
	}
	for i, res := range labels {
		if !res.OK() {
			continue
		}
		switch l := res.Label.(type) {
		case *pattern.Default:
			first(&defaultAt, i)
		case *pattern.Null:
			first(&nullAt, i)
		case *pattern.Constant:
			if v := l.Value; v.Kind() == jtypes.Boolean {
				if v.Bool() {
					first(&trueAt, i)
				} else {
					first(&falseAt, i)
				}
			}
		case *pattern.TypeTest:
			if res.Unconditional {
				first(&uncondAt, i)
			} else if !l.Guarded && unboxes(l.Type, selector) {
				first(&unboxAt, i)
			}
		case *pattern.Record:
			if !l.Guarded && classify.RecordCovers(l, selector) {
				first(&recordAt, i)
			}
		}
	}

	var r Result
	boolSelector := false
	if k, ok := jtypes.PrimitiveOf(selector); ok && k == jtypes.Boolean {
		boolSelector = true
	}
	allBooleans := boolSelector && trueAt >= 0 && falseAt >= 0

	r.Exhaustive = defaultAt >= 0 || uncondAt >= 0 || unboxAt >= 0 ||
		allBooleans || (recordAt >= 0 && nullAt >= 0)

	if defaultAt >= 0 && uncondAt >= 0 {
		r.Findings = append(r.Findings, second(UnconditionalAndDefault, defaultAt, uncondAt))
	}
	if defaultAt >= 0 && allBooleans {
		r.Findings = append(r.Findings, second(BooleanAndDefaultConflict, defaultAt, max(trueAt, falseAt)))
	}
	return r
}

// second attaches a finding of kind k to the later of labels a and b.
func second(k Kind, a, b int) Finding {
	if a < b {
		a, b = b, a
	}
	return Finding{Kind: k, Label: a, Other: b}
}

// unboxes reports whether an unguarded primitive pattern testing t
// matches every non-null value of the wrapper type selector.
func unboxes(t, selector jtypes.Type) bool {
	w, ok := selector.(*jtypes.Wrapper)
	if !ok {
		return false
	}
	p, ok := t.(*jtypes.Primitive)
	return ok && jtypes.SameOrWidens(w.Unboxed(), p.Kind())
}
