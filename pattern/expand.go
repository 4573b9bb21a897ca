// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"slices"

	"github.com/patternlint/patternlint/jtypes"
)

// A Component is one component pattern of a record pattern, addressed
// by the sequence of component indices from the root record.
type Component struct {
	Path  []int
	Label Label       // a *TypeTest or *Record
	Type  jtypes.Type // declared type of the component; nil if the record has no such component
}

// Expand flattens the components of r in preorder. Nested record
// patterns appear before their own components. The root itself is
// not included.
func Expand(r *Record) []Component {
	return expand(nil, r, nil)
}

func expand(out []Component, r *Record, path []int) []Component {
	for i, c := range r.Components {
		p := append(slices.Clip(path), i)
		var typ jtypes.Type
		if r.Type != nil && i < r.Type.NumFields() {
			typ = r.Type.Field(i).Type
		}
		out = append(out, Component{Path: p, Label: c, Type: typ})
		if sub, ok := c.(*Record); ok {
			out = expand(out, sub, p)
		}
	}
	return out
}

// ComponentAt returns the component of r at path, or nil.
func ComponentAt(r *Record, path []int) Label {
	var l Label = r
	for _, i := range path {
		rec, ok := l.(*Record)
		if !ok || i < 0 || i >= len(rec.Components) {
			return nil
		}
		l = rec.Components[i]
	}
	return l
}
