package howl

import (
	"errors"
	"reflect"
	"testing"
)

func TestScopeDefineAndGet(t *testing.T) {
	s := NewScopeStack()
	s.Define("x", NewInt(1))

	v, err := s.GetVar("x")
	if err != nil || v.Int() != 1 {
		t.Fatalf("get after define: %v %v", v, err)
	}
	if _, err := s.GetVar("missing"); !errors.Is(err, ErrUndefinedVariable) {
		t.Fatalf("expected undefined variable, got %v", err)
	}
}

func TestScopeShadowingAndPop(t *testing.T) {
	s := NewScopeStack()
	s.Define("x", NewInt(1))
	s.Push(7)
	s.Define("x", NewInt(2))

	v, _ := s.GetVar("x")
	if v.Int() != 2 {
		t.Fatalf("inner binding should shadow, got %v", v)
	}

	s.Pop()
	v, _ = s.GetVar("x")
	if v.Int() != 1 {
		t.Fatalf("outer binding should survive pop, got %v", v)
	}
}

func TestScopeSetWalksOutward(t *testing.T) {
	s := NewScopeStack()
	s.Define("x", NewInt(1))
	s.Push(3)

	if err := s.SetVar("x", NewInt(9)); err != nil {
		t.Fatalf("set should find outer binding: %v", err)
	}
	s.Pop()
	v, _ := s.GetVar("x")
	if v.Int() != 9 {
		t.Fatalf("outer binding should be mutated, got %v", v)
	}

	if err := s.SetVar("unbound", NewInt(1)); !errors.Is(err, ErrUndefinedVariable) {
		t.Fatalf("set on unbound name should fail, got %v", err)
	}
}

func TestScopeGlobalFrameNeverPops(t *testing.T) {
	s := NewScopeStack()
	s.Define("keep", NewInt(1))
	s.Pop()
	s.Pop()
	if !s.IsDefined("keep") {
		t.Fatalf("global frame was popped")
	}
	if s.Depth() != 1 {
		t.Fatalf("depth should stay 1, got %d", s.Depth())
	}
}

func TestScopeVisibleNames(t *testing.T) {
	s := NewScopeStack()
	s.Define("b", NewInt(1))
	s.Define("a", NewInt(2))
	s.Push(5)
	s.Define("a", NewInt(3))
	s.Define("c", NewInt(4))

	got := s.VisibleNames()
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("visible names: got %v, want %v", got, want)
	}
}
