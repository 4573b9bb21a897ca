// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package switchcheck reports dominated labels and missing coverage in
Java switch statements and expressions whose selector is a primitive,
a wrapper class, Number, Object, a user type or a record.

The input is a [pattern.Switch]: the static type of the selector and
the ordered list of case labels. The checker runs three independent
passes over it:

  - classification, which decides whether each label is applicable
    to the selector type (IncompatibleType, ConstantRequired,
    InvalidNullConversion, RecordComponentCount);
  - dominance, which finds labels made unreachable by an earlier one
    (Dominated, DuplicateUnconditional);
  - exhaustiveness, which decides whether the labels cover every
    value of the selector (NonExhaustive, BooleanAndDefaultConflict,
    UnconditionalAndDefault).

Labels using constructs beyond the configured Java language level are
reported as UnsupportedFeature and are otherwise analysed normally.
A problem with one label never prevents the analysis of the others.

Example:

	sw := &pattern.Switch{
		Selector: jtypes.Typ[jtypes.Float],
		Labels: []pattern.Label{
			&pattern.TypeTest{Type: jtypes.Typ[jtypes.Float], Name: "c"},
			&pattern.Constant{Value: nan, Text: "Float.NaN"},
		},
	}
	res, err := new(switchcheck.Checker).Check(sw)
	// res.Diagnostics[0].Message ==
	//	"Label is dominated by a preceding case label 'float c'"

The [Checker.CheckAll] method analyses many switches concurrently.
*/
package switchcheck
