// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtypes

import "strings"

// A Type is the static type of a switch selector, a record component
// or a type-test pattern. The set of implementations is closed:
// *Primitive, *Wrapper and *Reference.
type Type interface {
	// String returns the presentable name of the type, fully
	// qualified for java.lang classes (e.g. "java.lang.Integer").
	String() string

	// SimpleName returns the unqualified name (e.g. "Integer").
	SimpleName() string

	aType()
}

// A Primitive is one of the eight primitive types.
type Primitive struct {
	kind PrimitiveKind
}

// Kind returns the primitive kind of p.
func (p *Primitive) Kind() PrimitiveKind { return p.kind }

func (p *Primitive) String() string     { return p.kind.String() }
func (p *Primitive) SimpleName() string { return p.kind.String() }
func (*Primitive) aType()               {}

// A Wrapper is one of the eight java.lang box classes.
type Wrapper struct {
	kind WrapperKind
}

// Kind returns the wrapper kind of w.
func (w *Wrapper) Kind() WrapperKind { return w.kind }

// Unboxed returns the primitive kind w unboxes to.
func (w *Wrapper) Unboxed() PrimitiveKind { return Unbox(w.kind) }

func (w *Wrapper) String() string     { return "java.lang." + w.kind.String() }
func (w *Wrapper) SimpleName() string { return w.kind.String() }
func (*Wrapper) aType()               {}

// RefKind distinguishes the reference types that are not wrappers.
type RefKind uint8

const (
	ObjectRef RefKind = iota // java.lang.Object
	NumberRef                // java.lang.Number
	NamedRef                 // a user class, interface or record
)

// A Reference is java.lang.Object, java.lang.Number, or a user-declared
// class, interface or record. Records carry their component list.
type Reference struct {
	kind   RefKind
	name   string
	record bool
	fields []*Field
}

// A Field is a record component.
type Field struct {
	Name string
	Type Type
}

// Kind returns the reference kind of r.
func (r *Reference) Kind() RefKind { return r.kind }

// Name returns the declared name of a user type, or the simple
// name of Object and Number.
func (r *Reference) Name() string { return r.name }

// IsRecord reports whether r is a record class.
func (r *Reference) IsRecord() bool { return r.record }

// NumFields returns the number of record components of r.
func (r *Reference) NumFields() int { return len(r.fields) }

// Field returns the i'th record component of r.
func (r *Reference) Field(i int) *Field { return r.fields[i] }

// Fields returns the record components of r. The result must not be
// modified.
func (r *Reference) Fields() []*Field { return r.fields }

// SetFields sets the components of a record created by NewRecord.
// It allows the construction of records whose components refer to
// records declared later. It panics if r is not a record.
func (r *Reference) SetFields(fields []*Field) {
	if !r.record {
		panic("SetFields on non-record type " + r.name)
	}
	r.fields = fields
}

func (r *Reference) String() string {
	switch r.kind {
	case ObjectRef, NumberRef:
		return "java.lang." + r.name
	}
	return r.name
}

func (r *Reference) SimpleName() string { return r.name }
func (*Reference) aType()               {}

// Predeclared types.
var (
	// Typ holds the primitive types, indexed by kind.
	Typ = [numKinds]*Primitive{
		Boolean: {Boolean},
		Byte:    {Byte},
		Short:   {Short},
		Char:    {Char},
		Int:     {Int},
		Long:    {Long},
		Float:   {Float},
		Double:  {Double},
	}

	// Boxed holds the wrapper types, indexed by wrapper kind.
	Boxed = [numWrappers]*Wrapper{
		BooleanBox:   {BooleanBox},
		ByteBox:      {ByteBox},
		ShortBox:     {ShortBox},
		CharacterBox: {CharacterBox},
		IntegerBox:   {IntegerBox},
		LongBox:      {LongBox},
		FloatBox:     {FloatBox},
		DoubleBox:    {DoubleBox},
	}

	Object = &Reference{kind: ObjectRef, name: "Object"}
	Number = &Reference{kind: NumberRef, name: "Number"}
)

// NewNamed returns a user-declared class or interface type.
func NewNamed(name string) *Reference {
	return &Reference{kind: NamedRef, name: name}
}

// NewRecord returns a record type with the given components.
func NewRecord(name string, fields ...*Field) *Reference {
	return &Reference{kind: NamedRef, name: name, record: true, fields: fields}
}

// Lookup returns the predeclared type with the given simple or
// java.lang-qualified name, or nil.
func Lookup(name string) Type {
	name = strings.TrimPrefix(name, "java.lang.")
	for _, k := range Kinds {
		if name == k.String() {
			return Typ[k]
		}
	}
	for w := BooleanBox; w < numWrappers; w++ {
		if name == w.String() {
			return Boxed[w]
		}
	}
	switch name {
	case "Object":
		return Object
	case "Number":
		return Number
	}
	return nil
}

// Identical reports whether x and y are the same type. User types are
// identical when they have the same name.
func Identical(x, y Type) bool {
	switch x := x.(type) {
	case *Primitive:
		y, ok := y.(*Primitive)
		return ok && x.kind == y.kind
	case *Wrapper:
		y, ok := y.(*Wrapper)
		return ok && x.kind == y.kind
	case *Reference:
		y, ok := y.(*Reference)
		return ok && x.kind == y.kind && x.name == y.name
	}
	return false
}

// IsReference reports whether t is a reference type, i.e. whether
// null is one of its values.
func IsReference(t Type) bool {
	_, prim := t.(*Primitive)
	return t != nil && !prim
}

// PrimitiveOf returns the primitive kind of t if t is a primitive
// type, or the kind it unboxes to if t is a wrapper.
func PrimitiveOf(t Type) (PrimitiveKind, bool) {
	switch t := t.(type) {
	case *Primitive:
		return t.kind, true
	case *Wrapper:
		return Unbox(t.kind), true
	}
	return InvalidKind, false
}

// IsReferenceSupertypeOf reports whether s is a proper or improper
// reference supertype of t. Object is a supertype of everything;
// Number of itself and of the numeric wrappers; a user type only of
// itself. Primitive types have no reference supertypes: they must be
// boxed first.
func IsReferenceSupertypeOf(s *Reference, t Type) bool {
	switch s.kind {
	case ObjectRef:
		return true
	case NumberRef:
		switch t := t.(type) {
		case *Wrapper:
			return IsNumeric(Unbox(t.kind))
		case *Reference:
			return t.kind == NumberRef
		}
		return false
	}
	return Identical(s, t)
}

// IsNumericType reports whether values of t are (or unbox to) numbers:
// numeric primitives, their wrappers, and Number itself.
func IsNumericType(t Type) bool {
	if k, ok := PrimitiveOf(t); ok {
		return IsNumeric(k)
	}
	r, ok := t.(*Reference)
	return ok && r.kind == NumberRef
}
