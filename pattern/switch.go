// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"fmt"

	"github.com/patternlint/patternlint/jtypes"
)

// A Switch is one switch statement or expression under analysis. The
// index of a label in Labels is its position in the switch block.
type Switch struct {
	Name       string      // for diagnostics; may be empty
	Selector   jtypes.Type // static type of the selector expression
	Labels     []Label
	Expression bool   // a switch expression rather than a statement
	Release    string // Java language level, e.g. "21"; empty means latest
}

// Validate reports structural problems that prevent analysis: a
// missing selector type, nil labels, and records whose pattern or
// declaration is malformed beyond what the checker diagnoses.
func (sw *Switch) Validate() error {
	if sw.Selector == nil {
		return fmt.Errorf("switch %s: no selector type", sw.Name)
	}
	for i, l := range sw.Labels {
		if err := validLabel(l); err != nil {
			return fmt.Errorf("switch %s: label %d: %v", sw.Name, i, err)
		}
	}
	return nil
}

func validLabel(l Label) error {
	switch l := l.(type) {
	case nil:
		return fmt.Errorf("nil label")
	case *Constant:
		if l == nil {
			return fmt.Errorf("nil label")
		}
		if !l.NonConstant && !l.Value.IsValid() {
			return fmt.Errorf("constant %q has no value", l.Text)
		}
	case *TypeTest:
		if l == nil || l.Type == nil {
			return fmt.Errorf("type pattern without a type")
		}
	case *Record:
		if l == nil || l.Type == nil {
			return fmt.Errorf("record pattern without a type")
		}
		for _, c := range l.Components {
			switch c.(type) {
			case *TypeTest, *Record:
			default:
				return fmt.Errorf("record pattern %s: component %v is not a pattern", l.Type.Name(), c)
			}
			if err := validLabel(c); err != nil {
				return err
			}
		}
	}
	return nil
}
