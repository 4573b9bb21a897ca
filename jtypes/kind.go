// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtypes

// A PrimitiveKind is one of the eight Java primitive types.
type PrimitiveKind uint8

const (
	InvalidKind PrimitiveKind = iota

	Boolean
	Byte
	Short
	Char
	Int
	Long
	Float
	Double

	numKinds
)

// Kinds lists the valid primitive kinds in declaration order.
var Kinds = [...]PrimitiveKind{Boolean, Byte, Short, Char, Int, Long, Float, Double}

var kindNames = [numKinds]string{
	InvalidKind: "invalid",
	Boolean:     "boolean",
	Byte:        "byte",
	Short:       "short",
	Char:        "char",
	Int:         "int",
	Long:        "long",
	Float:       "float",
	Double:      "double",
}

func (k PrimitiveKind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "invalid"
}

// Valid reports whether k is one of the eight primitive kinds.
func (k PrimitiveKind) Valid() bool { return k > InvalidKind && k < numKinds }

// Integral reports whether k is byte, short, char, int or long.
func (k PrimitiveKind) Integral() bool {
	switch k {
	case Byte, Short, Char, Int, Long:
		return true
	}
	return false
}

// Floating reports whether k is float or double.
func (k PrimitiveKind) Floating() bool { return k == Float || k == Double }

// IsNumeric reports whether values of kind k are boxed to a subclass
// of java.lang.Number. That excludes boolean and char.
func IsNumeric(k PrimitiveKind) bool {
	switch k {
	case Byte, Short, Int, Long, Float, Double:
		return true
	}
	return false
}

// widening is the widening primitive conversion graph, restricted to
// the conversions that matter for pattern dominance. It is neither
// reflexive nor symmetric.
var widening = [numKinds][numKinds]bool{
	Byte:  {Short: true, Int: true, Long: true, Float: true, Double: true},
	Short: {Int: true, Long: true, Float: true, Double: true},
	Char:  {Int: true, Long: true, Float: true, Double: true},
	Int:   {Long: true, Float: true, Double: true},
	Long:  {Float: true, Double: true},
	Float: {Double: true},
}

// WidensTo reports whether every value of kind a is implicitly
// converted to kind b by widening. float and double are taken to hold
// every integral value exactly.
func WidensTo(a, b PrimitiveKind) bool {
	if a >= numKinds || b >= numKinds {
		return false
	}
	return widening[a][b]
}

// SameOrWidens reports whether a == b or a widens to b.
func SameOrWidens(a, b PrimitiveKind) bool {
	return a.Valid() && (a == b || WidensTo(a, b))
}

// A WrapperKind is one of the eight java.lang box classes.
type WrapperKind uint8

const (
	InvalidWrapper WrapperKind = iota

	BooleanBox
	ByteBox
	ShortBox
	CharacterBox
	IntegerBox
	LongBox
	FloatBox
	DoubleBox

	numWrappers
)

var wrapperNames = [numWrappers]string{
	InvalidWrapper: "invalid",
	BooleanBox:     "Boolean",
	ByteBox:        "Byte",
	ShortBox:       "Short",
	CharacterBox:   "Character",
	IntegerBox:     "Integer",
	LongBox:        "Long",
	FloatBox:       "Float",
	DoubleBox:      "Double",
}

// String returns the simple class name, e.g. "Integer".
func (w WrapperKind) String() string {
	if w < numWrappers {
		return wrapperNames[w]
	}
	return "invalid"
}

// Valid reports whether w is one of the eight wrapper classes.
func (w WrapperKind) Valid() bool { return w > InvalidWrapper && w < numWrappers }

var unbox = [numWrappers]PrimitiveKind{
	BooleanBox:   Boolean,
	ByteBox:      Byte,
	ShortBox:     Short,
	CharacterBox: Char,
	IntegerBox:   Int,
	LongBox:      Long,
	FloatBox:     Float,
	DoubleBox:    Double,
}

var box = [numKinds]WrapperKind{
	Boolean: BooleanBox,
	Byte:    ByteBox,
	Short:   ShortBox,
	Char:    CharacterBox,
	Int:     IntegerBox,
	Long:    LongBox,
	Float:   FloatBox,
	Double:  DoubleBox,
}

// Unbox returns the primitive kind that w unboxes to.
// It returns InvalidKind for an invalid wrapper.
func Unbox(w WrapperKind) PrimitiveKind {
	if w >= numWrappers {
		return InvalidKind
	}
	return unbox[w]
}

// Box returns the wrapper class of primitive kind k.
func Box(k PrimitiveKind) WrapperKind {
	if k >= numKinds {
		return InvalidWrapper
	}
	return box[k]
}
