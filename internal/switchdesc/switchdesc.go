// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package switchdesc decodes YAML descriptions of Java switches.
//
// A description file declares the user types, records and named
// constants its switches refer to, and then lists the switches:
//
//	release: "23"
//	types: [A1, A2]
//	records:
//	  RecordInt: [int source]
//	constants:
//	  BOXED: {type: Long, value: 1L}
//	switches:
//	  - name: testNull
//	    selector: Integer
//	    labels:
//	      - Integer i
//	      - null
//
// Labels are written in a Java-like notation. A label is default,
// null, a type pattern, a record pattern, or a constant:
//
//	default
//	null
//	Integer i
//	Object o when o.hashCode() > 0
//	Line(Point(int x, var y), Point p) l
//	(byte) 0
//	BOXED
//
// Guards are not evaluated; their presence makes a pattern
// conditional. Constants are Java constant expressions (see
// [jtypes.ParseLiteral]) or the names of declared constants.
package switchdesc

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/patternlint/patternlint/internal/feature"
	"github.com/patternlint/patternlint/jtypes"
	"github.com/patternlint/patternlint/pattern"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// A File is a decoded description file.
type File struct {
	Name     string
	Release  string // default language level of the switches
	Switches []*Switch
}

// A Switch is a decoded switch together with the source lines of its
// parts.
type Switch struct {
	*pattern.Switch
	Line       int   // line of the selector
	LabelLines []int // line of each label
}

// LineOf returns the line a diagnostic attached to label i (or to the
// whole switch, if i is negative) refers to.
func (sw *Switch) LineOf(i int) int {
	if i < 0 || i >= len(sw.LabelLines) {
		return sw.Line
	}
	return sw.LabelLines[i]
}

// A Text is a YAML scalar and the line it appears on.
type Text struct {
	Value string
	Line  int
}

// UnmarshalYAML implements yaml.Unmarshaler. A single-quoted scalar
// is a Java char literal and keeps its quotes.
func (t *Text) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return &lineError{n.Line, fmt.Errorf("want a scalar, found %s", nodeKind(n.Kind))}
	}
	t.Value, t.Line = n.Value, n.Line
	if n.Style&yaml.SingleQuotedStyle != 0 {
		t.Value = "'" + n.Value + "'"
	}
	return nil
}

func nodeKind(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.MappingNode:
		return "a mapping"
	case yaml.AliasNode:
		return "an alias"
	}
	return "a document"
}

// The YAML schema.
type (
	file struct {
		Release   string                  `yaml:"release" validate:"omitempty,release"`
		Types     []Text                  `yaml:"types" validate:"dive,javaident"`
		Records   map[string][]Text       `yaml:"records" validate:"dive,keys,javaident,endkeys,dive,required"`
		Constants map[string]constantDecl `yaml:"constants" validate:"dive,keys,javaident,endkeys"`
		Switches  []switchDecl            `yaml:"switches" validate:"required,dive"`
	}

	constantDecl struct {
		Type  Text `yaml:"type" validate:"required"`
		Value Text `yaml:"value"` // empty for an initializer that is not a constant expression
	}

	switchDecl struct {
		Name       string `yaml:"name" validate:"required"`
		Selector   Text   `yaml:"selector" validate:"required"`
		Expression bool   `yaml:"expression"`
		Release    string `yaml:"release" validate:"omitempty,release"`

		// Labels are kept as nodes: the decoder does not call
		// UnmarshalYAML for a "null" scalar.
		Labels []yaml.Node `yaml:"labels"`
	}
)

var (
	validate = newValidator()
	identRx  = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(v reflect.Value) any {
		return v.Interface().(Text).Value
	}, Text{})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		return name
	})
	must(v.RegisterValidation("release", func(fl validator.FieldLevel) bool {
		return feature.Valid(fl.Field().String())
	}))
	must(v.RegisterValidation("javaident", func(fl validator.FieldLevel) bool {
		return identRx.MatchString(fl.Field().String())
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Decode decodes and resolves the description file content. Errors
// are prefixed by filename and, where known, the line.
func Decode(filename string, content []byte) (*File, error) {
	var f file
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, positioned(filename, err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, xerrors.Errorf("%s: %w", filename, validationError(err))
	}

	sc, err := declare(&f)
	if err != nil {
		return nil, positioned(filename, err)
	}
	out := &File{Name: filename, Release: f.Release}
	for _, d := range f.Switches {
		sw, err := sc.resolveSwitch(d)
		if err != nil {
			return nil, positioned(filename, err)
		}
		if sw.Release == "" {
			sw.Release = f.Release
		}
		out.Switches = append(out.Switches, sw)
	}
	return out, nil
}

// validationError renders the first failed validation of a file.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !xerrors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	field := strings.TrimPrefix(fe.Namespace(), "file.")
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "release":
		return fmt.Errorf("%s: invalid language level %q", field, fieldText(fe))
	case "javaident":
		return fmt.Errorf("%s: %q is not a Java identifier", field, fieldText(fe))
	}
	return fmt.Errorf("%s: failed %s validation", field, fe.Tag())
}

func fieldText(fe validator.FieldError) string {
	switch v := fe.Value().(type) {
	case Text:
		return v.Value
	case string:
		return v
	}
	return fmt.Sprint(fe.Value())
}

// lineError is an error at a line of the file. A zero line is
// unknown.
type lineError struct {
	line int
	err  error
}

func (e *lineError) Error() string { return fmt.Sprintf("line %d: %v", e.line, e.err) }
func (e *lineError) Unwrap() error { return e.err }

// positioned prefixes err with filename and the line of a lineError.
func positioned(filename string, err error) error {
	var le *lineError
	if xerrors.As(err, &le) && le.line > 0 {
		return xerrors.Errorf("%s:%d: %w", filename, le.line, le.err)
	}
	if le != nil {
		err = le.err
	}
	return xerrors.Errorf("%s: %w", filename, err)
}

func errorAt(t Text, format string, args ...any) error {
	return &lineError{t.Line, fmt.Errorf(format, args...)}
}

// A scope holds the types and constants declared by a file.
type scope struct {
	types     map[string]jtypes.Type
	constants map[string]*pattern.Constant
}

// declare builds the scope of f. Records are created before their
// components are resolved, so components may refer to any record.
func declare(f *file) (*scope, error) {
	sc := &scope{
		types:     make(map[string]jtypes.Type),
		constants: make(map[string]*pattern.Constant),
	}
	for _, t := range f.Types {
		if err := sc.declareType(t, jtypes.NewNamed(t.Value)); err != nil {
			return nil, err
		}
	}
	for name, comps := range f.Records {
		at := Text{Value: name}
		if len(comps) > 0 {
			at.Line = comps[0].Line
		}
		if err := sc.declareType(at, jtypes.NewRecord(name)); err != nil {
			return nil, err
		}
	}
	for name, comps := range f.Records {
		fields := make([]*jtypes.Field, len(comps))
		for i, c := range comps {
			typ, fname, ok := strings.Cut(strings.TrimSpace(c.Value), " ")
			fname = strings.TrimSpace(fname)
			if !ok || !identRx.MatchString(fname) {
				return nil, errorAt(c, "record %s: component %q is not of the form \"Type name\"", name, c.Value)
			}
			t, err := sc.lookupType(c, typ)
			if err != nil {
				return nil, err
			}
			fields[i] = &jtypes.Field{Name: fname, Type: t}
		}
		sc.types[name].(*jtypes.Reference).SetFields(fields)
	}
	for name, d := range f.Constants {
		c, err := sc.declareConstant(name, d)
		if err != nil {
			return nil, err
		}
		sc.constants[name] = c
	}
	return sc, nil
}

func (sc *scope) declareType(at Text, t jtypes.Type) error {
	name := at.Value
	if jtypes.Lookup(name) != nil {
		return errorAt(at, "type %s redeclares a predeclared type", name)
	}
	if _, dup := sc.types[name]; dup {
		return errorAt(at, "type %s declared twice", name)
	}
	sc.types[name] = t
	return nil
}

// lookupType resolves a type name at the position of t.
func (sc *scope) lookupType(at Text, name string) (jtypes.Type, error) {
	if t := jtypes.Lookup(name); t != nil {
		return t, nil
	}
	if t, ok := sc.types[name]; ok {
		return t, nil
	}
	return nil, errorAt(at, "unknown type %s", name)
}

// declareConstant resolves a named constant. A constant of a
// reference type, or one without a value, is not a constant
// expression.
func (sc *scope) declareConstant(name string, d constantDecl) (*pattern.Constant, error) {
	t, err := sc.lookupType(d.Type, d.Type.Value)
	if err != nil {
		return nil, err
	}
	c := &pattern.Constant{Type: t, Text: name}
	p, ok := t.(*jtypes.Primitive)
	if !ok || d.Value.Value == "" {
		c.NonConstant = true
		return c, nil
	}
	v, err := jtypes.ParseLiteral(d.Value.Value)
	if err != nil {
		return nil, errorAt(d.Value, "constant %s: %v", name, err)
	}
	k := p.Kind()
	narrows := v.Kind() != jtypes.Long && jtypes.Representable(v, k)
	if !jtypes.SameOrWidens(v.Kind(), k) && !narrows {
		return nil, errorAt(d.Value, "constant %s: cannot assign %s value %s to %s", name, v.Kind(), v, k)
	}
	c.Value, _ = jtypes.Convert(v, k)
	return c, nil
}

func (sc *scope) resolveSwitch(d switchDecl) (*Switch, error) {
	sel, err := sc.lookupType(d.Selector, strings.TrimSpace(d.Selector.Value))
	if err != nil {
		return nil, err
	}
	sw := &Switch{
		Switch: &pattern.Switch{
			Name:       d.Name,
			Selector:   sel,
			Expression: d.Expression,
			Release:    d.Release,
		},
		Line: d.Selector.Line,
	}
	for i := range d.Labels {
		var text Text
		if err := text.UnmarshalYAML(&d.Labels[i]); err != nil {
			le := err.(*lineError)
			return nil, &lineError{le.line, fmt.Errorf("switch %s: label %d: %v", d.Name, i, le.err)}
		}
		l, err := sc.parseLabel(text.Value)
		if err != nil {
			return nil, &lineError{text.Line, fmt.Errorf("switch %s: %v", d.Name, err)}
		}
		sw.Labels = append(sw.Labels, l)
		sw.LabelLines = append(sw.LabelLines, text.Line)
	}
	return sw, nil
}
