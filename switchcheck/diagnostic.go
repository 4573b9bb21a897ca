// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package switchcheck

import (
	"fmt"
	"strings"
)

// Kind classifies a Diagnostic.
type Kind int

const (
	Dominated                 Kind = iota // an earlier label accepts every value of this one
	IncompatibleType                      // the label does not convert to the selector type
	NonExhaustive                         // the labels do not cover the selector type
	DuplicateUnconditional                // a second unconditional pattern
	ConstantRequired                      // a constant label that is not a constant
	InvalidNullConversion                 // case null on a primitive selector
	BooleanAndDefaultConflict             // true, false and default
	UnconditionalAndDefault               // an unconditional pattern and default
	UnsupportedFeature                    // a construct beyond the language level
	RecordComponentCount                  // wrong number of record component patterns
)

var kindNames = [...]string{
	Dominated:                 "Dominated",
	IncompatibleType:          "IncompatibleType",
	NonExhaustive:             "NonExhaustive",
	DuplicateUnconditional:    "DuplicateUnconditional",
	ConstantRequired:          "ConstantRequired",
	InvalidNullConversion:     "InvalidNullConversion",
	BooleanAndDefaultConflict: "BooleanAndDefaultConflict",
	UnconditionalAndDefault:   "UnconditionalAndDefault",
	UnsupportedFeature:        "UnsupportedFeature",
	RecordComponentCount:      "RecordComponentCount",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText encodes k by name, for the JSON output of the command.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown diagnostic kind %q", text)
}

// SwitchLevel is the Label of a diagnostic attached to the switch as a
// whole.
const SwitchLevel = -1

// A Diagnostic is a problem found in one switch.
type Diagnostic struct {
	Kind Kind

	// Label is the index of the label the diagnostic is attached
	// to, or SwitchLevel.
	Label int

	// Path addresses a component of a record pattern within the
	// label; nil for the label itself.
	Path []int `json:",omitempty"`

	// By is the index of the other label involved: the dominating
	// label, or the first of two labels that make the switch total.
	// It is -1 if there is none.
	By int

	// Found and Required are the types of an IncompatibleType or
	// InvalidNullConversion diagnostic.
	Found    string `json:",omitempty"`
	Required string `json:",omitempty"`

	Message string
}

// Position returns "label 3" or "label 3 component 0.1" or "switch".
func (d *Diagnostic) Position() string {
	if d.Label == SwitchLevel {
		return "switch"
	}
	s := fmt.Sprintf("label %d", d.Label)
	if len(d.Path) > 0 {
		parts := make([]string, len(d.Path))
		for i, p := range d.Path {
			parts[i] = fmt.Sprint(p)
		}
		s += " component " + strings.Join(parts, ".")
	}
	return s
}
