// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package switchcheck

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English texts match the wording javac users see
// in their IDE.
const (
	msgDominated              = "switch.label.dominated"
	msgIncompatible           = "switch.label.incompatible"
	msgInconvertible          = "switch.label.inconvertible"
	msgNotExhaustiveStatement = "switch.statement.nonexhaustive"
	msgNotExhaustiveExpr      = "switch.expression.nonexhaustive"
	msgDuplicateUnconditional = "switch.label.duplicate.unconditional"
	msgConstantRequired       = "switch.label.constant.required"
	msgNullConversion         = "switch.label.null"
	msgBooleanAndDefault      = "switch.default.boolean"
	msgUnconditionalAndDflt   = "switch.default.unconditional"
	msgUnsupportedFeature     = "switch.feature.unsupported"
	msgComponentCount         = "switch.record.components"
)

var english = map[string]string{
	msgDominated:              "Label is dominated by a preceding case label '%s'",
	msgIncompatible:           "Incompatible types. Found: '%s', required: '%s'",
	msgInconvertible:          "Inconvertible types; cannot cast '%s' to '%s'",
	msgNotExhaustiveStatement: "'switch' statement does not cover all possible input values",
	msgNotExhaustiveExpr:      "'switch' expression does not cover all possible input values",
	msgDuplicateUnconditional: "Duplicate unconditional pattern",
	msgConstantRequired:       "Constant expression required",
	msgNullConversion:         "Incompatible types. Found: 'null', required: '%s'",
	msgBooleanAndDefault:      "'switch' has all boolean values and a default label",
	msgUnconditionalAndDflt:   "'switch' has both an unconditional pattern and a default label",
	msgUnsupportedFeature:     "%s are not supported at language level '%s'",
	msgComponentCount:         "Incorrect number of nested patterns for '%s': expected %d but found %d",
}

var printer = newPrinter()

func newPrinter() *message.Printer {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range english {
		if err := b.SetString(language.English, key, msg); err != nil {
			panic(err) // the table is static
		}
	}
	return message.NewPrinter(language.English, message.Catalog(b))
}

func sprintf(key string, args ...any) string {
	return printer.Sprintf(key, args...)
}
