package howl

import (
	"fmt"
	"strconv"
)

// ValueKind identifies the variant held by a Value.
type ValueKind int

const (
	KindInt ValueKind = iota
	KindFloat
	KindString
	KindSymbol
)

func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSymbol:
		return "symbol"
	}
	return "unknown"
}

// Value is an immutable tagged datum: integer, float, string, or symbol.
type Value struct {
	kind ValueKind
	data any
}

func NewInt(v int64) Value {
	return Value{kind: KindInt, data: v}
}

func NewFloat(v float64) Value {
	return Value{kind: KindFloat, data: v}
}

func NewString(v string) Value {
	return Value{kind: KindString, data: v}
}

func NewSymbol(v string) Value {
	return Value{kind: KindSymbol, data: v}
}

func (v Value) Kind() ValueKind { return v.kind }

// Unchecked accessors return the zero value on a kind mismatch.

func (v Value) Int() int64 {
	if i, ok := v.data.(int64); ok {
		return i
	}
	return 0
}

func (v Value) Float() float64 {
	if f, ok := v.data.(float64); ok {
		return f
	}
	return 0
}

func (v Value) Str() string {
	if s, ok := v.data.(string); ok {
		return s
	}
	return ""
}

// Checked accessors fail with ErrTypeMismatch when the tag does not match.

func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, fmt.Errorf("%w: want int, got %s", ErrTypeMismatch, v.kind)
	}
	return v.data.(int64), nil
}

func (v Value) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, fmt.Errorf("%w: want float, got %s", ErrTypeMismatch, v.kind)
	}
	return v.data.(float64), nil
}

// AsText accepts either a string or a symbol.
func (v Value) AsText() (string, error) {
	if v.kind != KindString && v.kind != KindSymbol {
		return "", fmt.Errorf("%w: want string or symbol, got %s", ErrTypeMismatch, v.kind)
	}
	return v.data.(string), nil
}

func (v Value) AsSymbol() (string, error) {
	if v.kind != KindSymbol {
		return "", fmt.Errorf("%w: want symbol, got %s", ErrTypeMismatch, v.kind)
	}
	return v.data.(string), nil
}

// Numeric coerces an int or float value to float64.
func (v Value) Numeric() (float64, error) {
	switch v.kind {
	case KindInt:
		return float64(v.data.(int64)), nil
	case KindFloat:
		return v.data.(float64), nil
	}
	return 0, fmt.Errorf("%w: want int or float, got %s", ErrTypeMismatch, v.kind)
}

// IsTruthy reports the truth value used by conditionals: numbers are true
// when nonzero, strings and symbols when nonempty.
func (v Value) IsTruthy() bool {
	switch v.kind {
	case KindInt:
		return v.data.(int64) != 0
	case KindFloat:
		return v.data.(float64) != 0
	case KindString, KindSymbol:
		return v.data.(string) != ""
	}
	return false
}

// String renders the value for REPL and stack display. Strings keep their
// quotes so they stay distinguishable from symbols.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.data.(int64), 10)
	case KindFloat:
		return strconv.FormatFloat(v.data.(float64), 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.data.(string))
	case KindSymbol:
		return v.data.(string)
	}
	return "?"
}

// Display renders the value the way print shows it: strings bare.
func (v Value) Display() string {
	if v.kind == KindString {
		return v.data.(string)
	}
	return v.String()
}
