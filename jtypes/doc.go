// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jtypes models the part of the Java type system that a
// pattern switch over primitive values needs: the eight primitive
// kinds and their widening conversions, the wrapper classes and the
// boxing bijection, the reference supertypes Number and Object, user
// classes and records, and folded compile-time constants.
//
// Types are compared with [Identical]. The predeclared types are
// singletons ([Typ], [Boxed], [Object], [Number]); user types are
// created with [NewNamed] and [NewRecord].
//
// Constant values are produced by [ParseLiteral], which folds Java
// literal syntax including casts and the named constants of the
// wrapper classes:
//
//	v, err := jtypes.ParseLiteral("(short) -1")
//	// v.Kind() == jtypes.Short, v.String() == "-1"
package jtypes
