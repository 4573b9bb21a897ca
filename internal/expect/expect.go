// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package expect extracts expectation notes from the line comments of a
YAML document.

A note is a line comment whose text is an identifier followed by zero
or more Go string literals:

	selector: Number      # want "does not cover"
	labels:
	  - char d            # want `cannot cast 'java.lang.Number' to 'char'`

Comments that do not start with an identifier are ignored, so ordinary
prose comments may appear anywhere. A comment that starts with an
identifier but is followed by anything other than string literals is
an error.
*/
package expect

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"

	"gopkg.in/yaml.v3"
)

// A Note is a parsed expectation note.
type Note struct {
	Line int      // 1-based line of the comment
	Name string   // the identifier that starts the note
	Args []string // the unquoted string arguments
}

// Parse collects the notes of every line comment in the YAML content.
// The notes are in document order.
func Parse(filename string, content []byte) ([]*Note, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%s: %v", filename, err)
	}
	return extract(nil, filename, &doc)
}

// extract appends the notes of n and its descendants.
func extract(notes []*Note, filename string, n *yaml.Node) ([]*Note, error) {
	if n.LineComment != "" {
		note, err := parse(n.LineComment)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: in '%s' comment: %v", filename, n.Line, noteName(n.LineComment), err)
		}
		if note != nil {
			note.Line = n.Line
			notes = append(notes, note)
		}
	}
	for _, c := range n.Content {
		var err error
		if notes, err = extract(notes, filename, c); err != nil {
			return nil, err
		}
	}
	return notes, nil
}

// parse parses the text of a single comment, including its leading
// '#'. It returns nil if the comment is not a note.
func parse(comment string) (*Note, error) {
	text := strings.TrimPrefix(comment, "#")

	var s scanner.Scanner
	s.Init(strings.NewReader(text))
	s.Mode = scanner.ScanIdents | scanner.ScanStrings | scanner.ScanRawStrings
	var err error
	s.Error = func(_ *scanner.Scanner, msg string) {
		if err == nil {
			err = fmt.Errorf("%s", msg)
		}
	}

	if s.Scan() != scanner.Ident {
		return nil, nil
	}
	note := &Note{Name: s.TokenText()}
	for {
		tok := s.Scan()
		if err != nil {
			return nil, err
		}
		switch tok {
		case scanner.EOF:
			return note, nil
		case scanner.String, scanner.RawString:
			arg, uerr := strconv.Unquote(s.TokenText())
			if uerr != nil {
				return nil, fmt.Errorf("invalid string %s: %v", s.TokenText(), uerr)
			}
			note.Args = append(note.Args, arg)
		default:
			return nil, fmt.Errorf("got %s after %s, want string", scanner.TokenString(tok), note.Name)
		}
	}
}

// noteName returns the leading word of a comment, for error messages.
func noteName(comment string) string {
	fields := strings.Fields(strings.TrimPrefix(comment, "#"))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
