// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package switchchecktest provides utilities for testing the switch
// checker against description files annotated with expectations.
//
// Expectations are line comments of the form
//
//	# want "regexp" ...
//
// on the line of a label, for diagnostics attached to that label, or
// on the selector line, for diagnostics attached to the whole switch.
// Each diagnostic must match an expectation on its line, and each
// expectation must be matched by exactly one diagnostic.
package switchchecktest

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/patternlint/patternlint/internal/expect"
	"github.com/patternlint/patternlint/internal/switchdesc"
	"github.com/patternlint/patternlint/switchcheck"
	"golang.org/x/tools/txtar"
)

// Testing is an abstraction of a *testing.T.
type Testing interface {
	Errorf(format string, args ...any)
}

// Run checks the YAML members of every txtar archive in dir, and
// reports mismatches between the diagnostics and the expectations
// through t.
func Run(t Testing, dir string, c *switchcheck.Checker) {
	archives, err := filepath.Glob(filepath.Join(dir, "*.txtar"))
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	if len(archives) == 0 {
		t.Errorf("no .txtar files in %s", dir)
		return
	}
	for _, file := range archives {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Errorf("%v", err)
			continue
		}
		prefix := strings.TrimSuffix(filepath.Base(file), ".txtar")
		for _, f := range ar.Files {
			if filepath.Ext(f.Name) != ".yaml" {
				continue
			}
			CheckFile(t, prefix+"/"+f.Name, f.Data, c)
		}
	}
}

// CheckFile checks one description file.
func CheckFile(t Testing, filename string, content []byte, c *switchcheck.Checker) {
	notes, err := expect.Parse(filename, content)
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	want := make(map[int][]*regexp.Regexp)
	for _, n := range notes {
		if n.Name != "want" {
			continue
		}
		if len(n.Args) == 0 {
			t.Errorf("%s:%d: in 'want' comment: got EOF, want regular expression", filename, n.Line)
			continue
		}
		for _, arg := range n.Args {
			rx, err := regexp.Compile(arg)
			if err != nil {
				t.Errorf("%s:%d: in 'want' comment: %v", filename, n.Line, err)
				continue
			}
			want[n.Line] = append(want[n.Line], rx)
		}
	}

	file, err := switchdesc.Decode(filename, content)
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	for _, sw := range file.Switches {
		res, err := c.Check(sw.Switch)
		if err != nil {
			t.Errorf("%s:%d: %v", filename, sw.Line, err)
			continue
		}
		for _, d := range res.Diagnostics {
			line := sw.LineOf(d.Label)
			if !match(want, line, d.Message) {
				t.Errorf("%s:%d: unexpected diagnostic: %s", filename, line, d.Message)
			}
		}
	}

	var lines []int
	for line := range want {
		lines = append(lines, line)
	}
	sort.Ints(lines)
	for _, line := range lines {
		for _, rx := range want[line] {
			t.Errorf("%s:%d: no diagnostic was reported matching %s", filename, line, quote(rx))
		}
	}
}

// match consumes the first expectation on line that matches msg.
func match(want map[int][]*regexp.Regexp, line int, msg string) bool {
	rxs := want[line]
	for i, rx := range rxs {
		if rx.MatchString(msg) {
			rxs = append(rxs[:i:i], rxs[i+1:]...)
			if len(rxs) == 0 {
				delete(want, line)
			} else {
				want[line] = rxs
			}
			return true
		}
	}
	return false
}

func quote(rx *regexp.Regexp) string {
	return fmt.Sprintf("`%s`", rx)
}
