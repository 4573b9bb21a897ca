// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package switchcheck_test

import (
	"fmt"
	"log"

	"github.com/patternlint/patternlint/jtypes"
	"github.com/patternlint/patternlint/pattern"
	"github.com/patternlint/patternlint/switchcheck"
)

func ExampleChecker_Check() {
	one, err := jtypes.ParseLiteral("1")
	if err != nil {
		log.Fatal(err)
	}
	sw := &pattern.Switch{
		Selector: jtypes.Typ[jtypes.Int],
		Labels: []pattern.Label{
			&pattern.TypeTest{Type: jtypes.Number, Name: "number"},
			&pattern.Constant{Value: one},
		},
	}
	res, err := new(switchcheck.Checker).Check(sw)
	if err != nil {
		log.Fatal(err)
	}
	for _, d := range res.Diagnostics {
		fmt.Printf("%s: %s\n", d.Position(), d.Message)
	}
	fmt.Println("exhaustive:", res.Exhaustive)
	// Output:
	// label 1: Label is dominated by a preceding case label 'Number number'
	// exhaustive: true
}
