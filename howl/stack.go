package howl

import (
	"fmt"
	"strings"
)

// Stack is the LIFO data stack the interpreter executes against.
type Stack struct {
	values []Value
}

func NewStack() *Stack {
	return &Stack{values: make([]Value, 0, 64)}
}

func (s *Stack) Push(v Value) {
	s.values = append(s.values, v)
}

func (s *Stack) Pop() (Value, error) {
	if len(s.values) == 0 {
		return Value{}, ErrStackUnderflow
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return v, nil
}

func (s *Stack) Peek() (Value, error) {
	if len(s.values) == 0 {
		return Value{}, ErrStackUnderflow
	}
	return s.values[len(s.values)-1], nil
}

// Has reports whether the stack holds at least n values.
func (s *Stack) Has(n int) bool {
	return len(s.values) >= n
}

func (s *Stack) Len() int {
	return len(s.values)
}

func (s *Stack) IsEmpty() bool {
	return len(s.values) == 0
}

func (s *Stack) Clear() {
	s.values = s.values[:0]
}

// PopNumeric pops an int or float value and yields it as a float64,
// erasing the type distinction for arithmetic.
func (s *Stack) PopNumeric() (float64, error) {
	v, err := s.Pop()
	if err != nil {
		return 0, err
	}
	return v.Numeric()
}

// PopInt pops a value and rounds it to an integer; floats round half away
// from zero, anything non-numeric fails.
func (s *Stack) PopInt() (int64, error) {
	v, err := s.Pop()
	if err != nil {
		return 0, err
	}
	switch v.Kind() {
	case KindInt:
		return v.Int(), nil
	case KindFloat:
		f := v.Float()
		if f < 0 {
			return int64(f - 0.5), nil
		}
		return int64(f + 0.5), nil
	}
	return 0, fmt.Errorf("%w: want int or float, got %s", ErrTypeMismatch, v.Kind())
}

// PopText pops a string or symbol value.
func (s *Stack) PopText() (string, error) {
	v, err := s.Pop()
	if err != nil {
		return "", err
	}
	return v.AsText()
}

// PopSymbol pops a symbol value.
func (s *Stack) PopSymbol() (string, error) {
	v, err := s.Pop()
	if err != nil {
		return "", err
	}
	return v.AsSymbol()
}

func (s *Stack) Dup() error {
	top, err := s.Peek()
	if err != nil {
		return err
	}
	s.Push(top)
	return nil
}

func (s *Stack) Drop() error {
	_, err := s.Pop()
	return err
}

func (s *Stack) Swap() error {
	if !s.Has(2) {
		return ErrStackUnderflow
	}
	n := len(s.values)
	s.values[n-1], s.values[n-2] = s.values[n-2], s.values[n-1]
	return nil
}

// Over copies the second value to the top: [a b] becomes [a b a].
func (s *Stack) Over() error {
	if !s.Has(2) {
		return ErrStackUnderflow
	}
	s.Push(s.values[len(s.values)-2])
	return nil
}

// String renders the stack bottom-to-top for debug and REPL display.
func (s *Stack) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "stack [%d]", len(s.values))
	for i, v := range s.values {
		fmt.Fprintf(&b, "\n  [%d] %s", i, v)
	}
	return b.String()
}
