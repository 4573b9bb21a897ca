// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expect_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/patternlint/patternlint/internal/expect"
)

const doc = `# a file comment
release: "23"
switches:
  - name: testNumber
    selector: Number # want "does not cover"
    labels:
      - char d # want "cannot cast" ` + "`'char'`" + `
      - Integer i # (an ordinary remark)
      - default # note
`

func TestParse(t *testing.T) {
	notes, err := expect.Parse("a.yaml", []byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := []*expect.Note{
		{Line: 5, Name: "want", Args: []string{"does not cover"}},
		{Line: 7, Name: "want", Args: []string{"cannot cast", "'char'"}},
		{Line: 9, Name: "note"},
	}
	if diff := cmp.Diff(want, notes); diff != "" {
		t.Errorf("notes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		src, want string
	}{
		{"a: 1 # want foo\n", `a.yaml:1: in 'want' comment: got Ident after want, want string`},
		{"a: 1 # want \"\\q\"\n", `a.yaml:1: in 'want' comment:`},
		{"a: [1\n", `a.yaml: yaml:`},
	} {
		_, err := expect.Parse("a.yaml", []byte(test.src))
		if err == nil || !strings.HasPrefix(err.Error(), test.want) {
			t.Errorf("Parse(%q) = %v, want error with prefix %q", test.src, err, test.want)
		}
	}
}
