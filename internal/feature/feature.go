// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package feature gates pattern-matching constructs by Java language
// level.
//
// A language level is a Java release number such as "17", "21" or
// "1.8", optionally followed by "-preview". Levels are compared as
// semantic versions; the empty level is the latest one.
package feature

import (
	"strings"

	"github.com/patternlint/patternlint/jtypes"
	"github.com/patternlint/patternlint/pattern"
	"golang.org/x/mod/semver"
)

// A Feature is a language feature used by a switch.
type Feature int

const (
	PatternSwitch     Feature = iota // type patterns and null labels in switch
	RecordPatterns                   // record deconstruction patterns
	PrimitivePatterns                // primitive selectors and patterns beyond int
)

var features = [...]struct {
	name    string
	release string
}{
	PatternSwitch:     {"Patterns in switch", "21"},
	RecordPatterns:    {"Record patterns", "21"},
	PrimitivePatterns: {"Primitive types in patterns, instanceof and switch", "23"},
}

// String returns the plural noun phrase used in messages.
func (f Feature) String() string { return features[f].name }

// Release returns the first language level that supports f.
func (f Feature) Release() string { return features[f].release }

// Valid reports whether release is a well-formed language level.
func Valid(release string) bool {
	return release == "" || semver.IsValid(canonical(release))
}

func canonical(release string) string {
	release = strings.TrimSuffix(release, "-preview")
	return "v" + release
}

// Supports reports whether language level release supports f. An
// invalid level supports nothing.
func Supports(release string, f Feature) bool {
	if release == "" {
		return true
	}
	v := canonical(release)
	if !semver.IsValid(v) {
		return false
	}
	return semver.Compare(v, canonical(f.Release())) >= 0
}

// SwitchUses returns the features required by a switch over a value
// of the selector type, regardless of its labels.
func SwitchUses(selector jtypes.Type) []Feature {
	if p, ok := selector.(*jtypes.Primitive); ok {
		switch p.Kind() {
		case jtypes.Boolean, jtypes.Long, jtypes.Float, jtypes.Double:
			return []Feature{PrimitivePatterns}
		}
	}
	return nil
}

// LabelUses returns the features required by label l in a switch over
// selector, in order.
func LabelUses(selector jtypes.Type, l pattern.Label) []Feature {
	var fs []Feature
	switch l := l.(type) {
	case *pattern.Null:
		fs = append(fs, PatternSwitch)
	case *pattern.TypeTest:
		fs = append(fs, PatternSwitch)
		if _, ok := l.Type.(*jtypes.Primitive); ok || !jtypes.IsReference(selector) {
			fs = append(fs, PrimitivePatterns)
		}
	case *pattern.Record:
		fs = append(fs, PatternSwitch, RecordPatterns)
		if !jtypes.IsReference(selector) || primitiveComponents(l) {
			fs = append(fs, PrimitivePatterns)
		}
	}
	return fs
}

// primitiveComponents reports whether some component pattern of r
// tests a primitive type other than the declared component type.
func primitiveComponents(r *pattern.Record) bool {
	for _, c := range pattern.Expand(r) {
		tt, ok := c.Label.(*pattern.TypeTest)
		if !ok {
			continue
		}
		if _, prim := tt.Type.(*jtypes.Primitive); prim && (c.Type == nil || !jtypes.Identical(tt.Type, c.Type)) {
			return true
		}
	}
	return false
}

// Missing returns the first feature in fs not supported by release.
func Missing(release string, fs []Feature) (Feature, bool) {
	for _, f := range fs {
		if !Supports(release, f) {
			return f, true
		}
	}
	return 0, false
}
