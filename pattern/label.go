// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pattern defines the case labels of a Java pattern switch
// and the switch itself, in the form the checker consumes them.
//
// A [Label] is one of *[Constant], *[TypeTest], *[Record], *[Null] and
// *[Default]; the set is closed. Labels are values: the checker never
// modifies them.
package pattern

import (
	"strings"

	"github.com/patternlint/patternlint/jtypes"
)

// A Label is a single case label of a switch block.
type Label interface {
	// String returns the label as it would appear after "case",
	// e.g. "Integer i", "RecordInt(int x)" or "1L".
	String() string

	aLabel()
}

// A Constant is a constant-expression label such as "case 1L".
type Constant struct {
	Value jtypes.Value // folded value; invalid if NonConstant

	// NonConstant is set when the label names a variable whose
	// initializer is not a compile-time constant of primitive type,
	// for instance a static final Long.
	NonConstant bool

	// Type is the declared type of the named variable, if any.
	Type jtypes.Type

	// Text is the source spelling, used in messages. If empty the
	// value is printed.
	Text string
}

// A TypeTest is a type pattern "case T name", optionally guarded.
type TypeTest struct {
	Type    jtypes.Type
	Name    string
	Guarded bool // a "when" clause is attached
}

// A Record is a record deconstruction pattern. Each component is a
// *TypeTest or a nested *Record, in declaration order.
type Record struct {
	Type       *jtypes.Reference
	Components []Label
	Name       string // optional binding of the whole record
	Guarded    bool
}

// Null is the "case null" label.
type Null struct{}

// Default is the "default" label.
type Default struct{}

func (*Constant) aLabel() {}
func (*TypeTest) aLabel() {}
func (*Record) aLabel()   {}
func (*Null) aLabel()     {}
func (*Default) aLabel()  {}

func (c *Constant) String() string {
	if c.Text != "" {
		return c.Text
	}
	return c.Value.String()
}

func (p *TypeTest) String() string {
	if p.Name == "" {
		return typeName(p.Type)
	}
	return typeName(p.Type) + " " + p.Name
}

func (r *Record) String() string {
	var b strings.Builder
	b.WriteString(typeName(r.Type))
	b.WriteByte('(')
	for i, c := range r.Components {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteByte(')')
	if r.Name != "" {
		b.WriteByte(' ')
		b.WriteString(r.Name)
	}
	return b.String()
}

func (*Null) String() string    { return "null" }
func (*Default) String() string { return "default" }

func typeName(t jtypes.Type) string {
	if t == nil {
		return "?"
	}
	return t.SimpleName() // patterns are written unqualified
}

// IsGuarded reports whether l is a pattern with a guard.
func IsGuarded(l Label) bool {
	switch l := l.(type) {
	case *TypeTest:
		return l.Guarded
	case *Record:
		return l.Guarded
	}
	return false
}
