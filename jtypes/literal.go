// Copyright 2026 The Patternlint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jtypes

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// namedConstants are the compile-time constant fields of the
// java.lang wrapper classes.
var namedConstants = map[string]Value{
	"Byte.MIN_VALUE":           MakeInt(Byte, math.MinInt8),
	"Byte.MAX_VALUE":           MakeInt(Byte, math.MaxInt8),
	"Short.MIN_VALUE":          MakeInt(Short, math.MinInt16),
	"Short.MAX_VALUE":          MakeInt(Short, math.MaxInt16),
	"Character.MIN_VALUE":      MakeInt(Char, 0),
	"Character.MAX_VALUE":      MakeInt(Char, math.MaxUint16),
	"Integer.MIN_VALUE":        MakeInt(Int, math.MinInt32),
	"Integer.MAX_VALUE":        MakeInt(Int, math.MaxInt32),
	"Long.MIN_VALUE":           MakeInt(Long, math.MinInt64),
	"Long.MAX_VALUE":           MakeInt(Long, math.MaxInt64),
	"Float.NaN":                MakeFloat(Float, math.NaN()),
	"Float.POSITIVE_INFINITY":  MakeFloat(Float, math.Inf(1)),
	"Float.NEGATIVE_INFINITY":  MakeFloat(Float, math.Inf(-1)),
	"Float.MIN_VALUE":          MakeFloat(Float, math.SmallestNonzeroFloat32),
	"Float.MAX_VALUE":          MakeFloat(Float, math.MaxFloat32),
	"Float.MIN_NORMAL":         MakeFloat(Float, 0x1p-126),
	"Double.NaN":               MakeFloat(Double, math.NaN()),
	"Double.POSITIVE_INFINITY": MakeFloat(Double, math.Inf(1)),
	"Double.NEGATIVE_INFINITY": MakeFloat(Double, math.Inf(-1)),
	"Double.MIN_VALUE":         MakeFloat(Double, math.SmallestNonzeroFloat64),
	"Double.MAX_VALUE":         MakeFloat(Double, math.MaxFloat64),
	"Double.MIN_NORMAL":        MakeFloat(Double, 0x1p-1022),
}

// ParseLiteral folds a Java constant expression made of literals,
// the named constants of the wrapper classes, casts to primitive
// types, parentheses, unary minus and plus, and binary + and -.
//
// Examples: "1", "0x1fL", "'a'", "(byte) 0", "-0.0f", "Float.NaN",
// "Long.MAX_VALUE - (long) 9.22e18".
func ParseLiteral(text string) (Value, error) {
	p := &literalParser{src: text}
	v, err := p.expr()
	if err != nil {
		return Value{}, fmt.Errorf("invalid constant %q: %v", text, err)
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return Value{}, fmt.Errorf("invalid constant %q: unexpected %q", text, p.src[p.pos:])
	}
	return v, nil
}

type literalParser struct {
	src string
	pos int
}

func (p *literalParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *literalParser) peek() byte {
	p.skipSpace()
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

// expr = unary { ("+" | "-") unary } .
func (p *literalParser) expr() (Value, error) {
	x, err := p.unary()
	if err != nil {
		return Value{}, err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return x, nil
		}
		p.pos++
		y, err := p.unary()
		if err != nil {
			return Value{}, err
		}
		if x, err = arith(op, x, y); err != nil {
			return Value{}, err
		}
	}
}

// unary = ("-" | "+") unary | "(" primitive ")" unary | primary .
func (p *literalParser) unary() (Value, error) {
	switch p.peek() {
	case '-':
		p.pos++
		if isNumberStart(p.peek()) {
			return p.number(true)
		}
		x, err := p.unary()
		if err != nil {
			return Value{}, err
		}
		return negate(x)
	case '+':
		p.pos++
		return p.unary()
	case '(':
		if k, n := p.castPrefix(); k.Valid() {
			p.pos += n
			x, err := p.unary()
			if err != nil {
				return Value{}, err
			}
			v, ok := Convert(x, k)
			if !ok {
				return Value{}, fmt.Errorf("cannot cast %s to %s", x.kind, k)
			}
			return v, nil
		}
	}
	return p.primary()
}

// castPrefix reports whether the input at p.pos is "(kind)", and if
// so returns the kind and the length of the prefix.
func (p *literalParser) castPrefix() (PrimitiveKind, int) {
	rest := p.src[p.pos:]
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		return InvalidKind, 0
	}
	name := strings.TrimSpace(rest[1:end])
	for _, k := range Kinds {
		if k.String() == name {
			return k, end + 1
		}
	}
	return InvalidKind, 0
}

func (p *literalParser) primary() (Value, error) {
	c := p.peek()
	switch {
	case c == 0:
		return Value{}, fmt.Errorf("unexpected end of expression")
	case c == '(':
		p.pos++
		x, err := p.expr()
		if err != nil {
			return Value{}, err
		}
		if p.peek() != ')' {
			return Value{}, fmt.Errorf("missing ')'")
		}
		p.pos++
		return x, nil
	case c == '\'':
		return p.char()
	case isNumberStart(c):
		return p.number(false)
	case isIdentStart(c):
		start := p.pos
		for p.pos < len(p.src) && (isIdentStart(p.src[p.pos]) || isDigit(p.src[p.pos]) || p.src[p.pos] == '.') {
			p.pos++
		}
		name := p.src[start:p.pos]
		switch name {
		case "true":
			return MakeBool(true), nil
		case "false":
			return MakeBool(false), nil
		}
		if v, ok := namedConstants[strings.TrimPrefix(name, "java.lang.")]; ok {
			return v, nil
		}
		return Value{}, fmt.Errorf("unknown constant %s", name)
	}
	return Value{}, fmt.Errorf("unexpected %q", c)
}

func (p *literalParser) char() (Value, error) {
	// p.src[p.pos] == '\''
	rest := p.src[p.pos+1:]
	r, _, tail, err := strconv.UnquoteChar(rest, '\'')
	if err != nil {
		return Value{}, fmt.Errorf("bad char literal: %v", err)
	}
	if !strings.HasPrefix(tail, "'") || r > math.MaxUint16 {
		return Value{}, fmt.Errorf("bad char literal")
	}
	p.pos += 1 + len(rest) - len(tail) + 1
	return MakeInt(Char, int64(r)), nil
}

// number scans a numeric literal. If neg is set the literal was
// preceded by a unary minus, which permits the magnitude of
// Integer.MIN_VALUE and Long.MIN_VALUE.
func (p *literalParser) number(neg bool) (Value, error) {
	start := p.pos
	hex := strings.HasPrefix(p.src[p.pos:], "0x") || strings.HasPrefix(p.src[p.pos:], "0X")
	if hex {
		p.pos += 2
	}
scan:
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case isDigit(c) || isIdentStart(c) || c == '.':
		case (c == '+' || c == '-') && p.pos > start && exponentMark(p.src[p.pos-1], hex):
		default:
			break scan
		}
		p.pos++
	}
	return parseNumber(p.src[start:p.pos], neg)
}

func exponentMark(c byte, hex bool) bool {
	if hex {
		return c == 'p' || c == 'P'
	}
	return c == 'e' || c == 'E'
}

func parseNumber(lit string, neg bool) (Value, error) {
	s := strings.ReplaceAll(lit, "_", "")
	lower := strings.ToLower(s)
	hex := strings.HasPrefix(lower, "0x")

	floating := false
	kind := Int
	switch {
	case hex:
		floating = strings.ContainsRune(lower, 'p')
		if floating {
			kind = Double
		}
	default:
		floating = strings.ContainsAny(lower, ".e")
		if floating {
			kind = Double
		}
	}
	// Type suffixes. In a hex literal, f and d are digits unless
	// they follow the binary exponent.
	switch last := lower[len(lower)-1]; {
	case last == 'l' && !floating:
		kind = Long
		s = s[:len(s)-1]
	case (last == 'f' || last == 'd') && (!hex || floating):
		floating = true
		kind = Double
		if last == 'f' {
			kind = Float
		}
		s = s[:len(s)-1]
	}

	if floating {
		bits := 64
		if kind == Float {
			bits = 32
		}
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return Value{}, fmt.Errorf("bad floating literal %s", lit)
		}
		if neg {
			f = -f
		}
		return MakeFloat(kind, f), nil
	}

	base, digits := 10, s
	switch {
	case hex:
		base, digits = 16, s[2:]
	case strings.HasPrefix(lower, "0b"):
		base, digits = 2, s[2:]
	case len(s) > 1 && s[0] == '0':
		base, digits = 8, s[1:]
	}
	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return Value{}, fmt.Errorf("bad integer literal %s", lit)
	}
	// Decimal literals are bounded by the magnitude of MIN_VALUE;
	// the other bases may spell any bit pattern of the type.
	var limit uint64
	switch {
	case kind == Int && base == 10:
		limit = math.MaxInt32
	case kind == Int:
		limit = math.MaxUint32
	case base == 10:
		limit = math.MaxInt64
	default:
		limit = math.MaxUint64
	}
	if base == 10 && neg {
		limit++
	}
	if u > limit {
		return Value{}, fmt.Errorf("integer literal %s out of range for %s", lit, kind)
	}
	x := int64(u)
	if kind == Int {
		x = int64(int32(uint32(u)))
	}
	if neg {
		x = -x
	}
	return MakeInt(kind, x), nil
}

func negate(x Value) (Value, error) {
	switch {
	case x.kind == Boolean:
		return Value{}, fmt.Errorf("bad operand type boolean for unary -")
	case x.kind.Floating():
		return MakeFloat(x.kind, -x.f), nil
	case x.kind == Long:
		return MakeInt(Long, -x.i), nil
	}
	return MakeInt(Int, -x.i), nil
}

func arith(op byte, x, y Value) (Value, error) {
	if x.kind == Boolean || y.kind == Boolean {
		return Value{}, fmt.Errorf("bad operand types for binary %c", op)
	}
	k := promote(x.kind, y.kind)
	if k.Floating() {
		a, b := x.asFloat(), y.asFloat()
		if op == '-' {
			b = -b
		}
		return MakeFloat(k, a+b), nil
	}
	a, b := x.i, y.i
	if op == '-' {
		return MakeInt(k, a-b), nil
	}
	return MakeInt(k, a+b), nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isIdentStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' || c == '$'
}

func isNumberStart(c byte) bool { return isDigit(c) || c == '.' }
