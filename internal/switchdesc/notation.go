// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package switchdesc

import (
	"fmt"
	"strings"

	"github.com/patternlint/patternlint/jtypes"
	"github.com/patternlint/patternlint/pattern"
)

// parseLabel parses a label in the notation described in the package
// documentation.
func (sc *scope) parseLabel(text string) (pattern.Label, error) {
	s := strings.TrimSpace(text)
	switch s {
	case "":
		return nil, fmt.Errorf("empty label")
	case "default":
		return &pattern.Default{}, nil
	case "null":
		return &pattern.Null{}, nil
	}

	body, guarded := cutGuard(s)
	p, err := sc.parsePattern(body, nil)
	if err != nil {
		return nil, err
	}
	if p != nil {
		switch p := p.(type) {
		case *pattern.TypeTest:
			p.Guarded = guarded
		case *pattern.Record:
			p.Guarded = guarded
		}
		return p, nil
	}
	if guarded {
		return nil, fmt.Errorf("guard on constant label %q", body)
	}
	return sc.parseConstant(s)
}

// cutGuard splits a "when" guard off a pattern.
func cutGuard(s string) (string, bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ' ', '\t':
			if depth == 0 && strings.HasPrefix(strings.TrimLeft(s[i:], " \t"), "when ") {
				return strings.TrimSpace(s[:i]), true
			}
		}
	}
	return s, false
}

// parsePattern parses a type or record pattern. It returns nil and no
// error if s is not shaped like a pattern. declared is the type of the
// enclosing record component, if any; it gives "var" its meaning.
func (sc *scope) parsePattern(s string, declared jtypes.Type) (pattern.Label, error) {
	name := leadingName(s)
	if name == "" {
		return nil, nil
	}
	rest := strings.TrimSpace(s[len(name):])

	if strings.HasPrefix(rest, "(") {
		t, ok := sc.types[name]
		if !ok {
			if jtypes.Lookup(name) != nil {
				return nil, fmt.Errorf("%s is not a record", name)
			}
			return nil, fmt.Errorf("unknown record %s", name)
		}
		rec, ok := t.(*jtypes.Reference)
		if !ok || !rec.IsRecord() {
			return nil, fmt.Errorf("%s is not a record", name)
		}
		end := closingParen(rest)
		if end < 0 {
			return nil, fmt.Errorf("record pattern %s: missing ')'", name)
		}
		r := &pattern.Record{Type: rec}
		for i, c := range splitComponents(rest[1:end]) {
			var ctype jtypes.Type
			if i < rec.NumFields() {
				ctype = rec.Field(i).Type
			}
			p, err := sc.parsePattern(c, ctype)
			if err != nil {
				return nil, err
			}
			if p == nil {
				return nil, fmt.Errorf("record pattern %s: component %q is not a pattern", name, c)
			}
			r.Components = append(r.Components, p)
		}
		binding := strings.TrimSpace(rest[end+1:])
		if binding != "" && !identRx.MatchString(binding) {
			return nil, fmt.Errorf("record pattern %s: unexpected %q", name, binding)
		}
		r.Name = binding
		return r, nil
	}

	if !identRx.MatchString(rest) {
		return nil, nil
	}
	var t jtypes.Type
	switch {
	case name == "var" && declared != nil:
		t = declared
	case name == "var":
		return nil, fmt.Errorf("'var' is only allowed in record components")
	default:
		var ok bool
		if t = jtypes.Lookup(name); t == nil {
			if t, ok = sc.types[name]; !ok {
				return nil, fmt.Errorf("unknown type %s", name)
			}
		}
	}
	return &pattern.TypeTest{Type: t, Name: rest}, nil
}

// leadingName returns the possibly qualified identifier at the start
// of s.
func leadingName(s string) string {
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '.' || c == '_' || c == '$' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || i > 0 && '0' <= c && c <= '9' {
			i++
			continue
		}
		break
	}
	return strings.TrimRight(s[:i], ".")
}

// closingParen returns the index of the parenthesis that closes the
// one at s[0], or -1.
func closingParen(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth--; depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitComponents splits the component list of a record pattern at
// its top-level commas.
func splitComponents(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}

// parseConstant parses a declared constant name or a constant
// expression.
func (sc *scope) parseConstant(s string) (pattern.Label, error) {
	if c, ok := sc.constants[s]; ok {
		dup := *c
		return &dup, nil
	}
	v, err := jtypes.ParseLiteral(s)
	if err != nil {
		return nil, err
	}
	return &pattern.Constant{Value: v, Text: s}, nil
}
