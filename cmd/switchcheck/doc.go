// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
The switchcheck command reports dominated labels, incompatible
patterns and non-exhaustive switches in the Java switch descriptions
named on its command line.

Usage: switchcheck [flags] file.yaml...

Each file is a YAML description of one or more switches: the
user-declared types and records they refer to, their named constants,
and for each switch its selector type and its case labels in Java
notation. For example:

	records:
	  Point: [int x, int y]
	switches:
	  - name: area
	    selector: Object
	    labels:
	      - Point(int x, int y) p
	      - Object o

By default the command prints one line per diagnostic, of the form

	file.yaml:12: area: case 'int x': Label is dominated by ...

with the label column aligned across lines. When standard output is a
terminal, positions are highlighted unless -color=never is given.

The -json flag causes the command to emit a JSON array of Diagnostic
records instead, and the -f flag formats each record using the
template syntax of the text/template package. A Diagnostic record has
this form:

	type Diagnostic struct {
		File     string // name of the description file
		Line     int    // line of the label, or of the selector
		Switch   string // name of the switch
		Label    string // label text, empty for the switch as a whole
		Kind     string // e.g. "Dominated", "NonExhaustive"
		Message  string
		Found    string // for IncompatibleType: the selector type
		Required string // for IncompatibleType: the pattern type
	}

For example, this command lists only dominated labels:

	$ switchcheck -f='{{if eq .Kind.String "Dominated"}}{{.File}}:{{.Line}}{{end}}' *.yaml

The -html flag writes a self-contained HTML report, one table per file.

The -release flag sets the Java language level (such as "17" or
"23-preview") of the switches whose description names none. Patterns
that need a later level are reported as unsupported features. By
default every feature is available.

The -kind flag restricts the report, and the exit status, to the
diagnostics of the given comma-separated kinds, for example
-kind=Dominated,DuplicateUnconditional.

The -v flag logs the progress of each check to standard error.

The exit status is 0 if no diagnostics were reported, 1 if there were
diagnostics or a file could not be read or decoded, and 2 for a usage
error.
*/
package main
