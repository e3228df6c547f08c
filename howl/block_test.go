package howl

import "testing"

func TestBlockTypeScopePolicy(t *testing.T) {
	if !BlockGeneric.CreatesScope() || !BlockIf.CreatesScope() || !BlockFunction.CreatesScope() {
		t.Fatalf("generic, if and function blocks should create scopes")
	}
	if BlockLoop.CreatesScope() {
		t.Fatalf("loop blocks should not create scopes")
	}
}

func TestBlockRegistryRegisterClose(t *testing.T) {
	r := NewBlockRegistry()
	outer := r.RegisterBlock(BlockGeneric, 0, 0, Position{Line: 1, Column: 1})
	inner := r.RegisterBlock(BlockIf, 3, outer, Position{Line: 1, Column: 8})

	block, ok := r.Get(inner)
	if !ok {
		t.Fatalf("inner block not found")
	}
	if block.Parent != outer || block.Type != BlockIf || block.Closed {
		t.Fatalf("unexpected inner block record: %+v", block)
	}

	r.Close(inner, 9)
	block, _ = r.Get(inner)
	if !block.Closed || block.ClosePos != 9 {
		t.Fatalf("close not recorded: %+v", block)
	}

	// Records are durable: the outer block is still addressable.
	if _, ok := r.Get(outer); !ok {
		t.Fatalf("outer block lost")
	}
	if _, ok := r.Get(BlockID(99)); ok {
		t.Fatalf("bogus id should not resolve")
	}
}

func TestBlockStackLIFO(t *testing.T) {
	s := NewBlockStack()
	if _, ok := s.Pop(); ok {
		t.Fatalf("pop on empty should report not ok")
	}
	if s.Current() != 0 {
		t.Fatalf("current on empty should be zero")
	}

	s.Push(1)
	s.Push(2)
	if s.Current() != 2 || s.Depth() != 2 {
		t.Fatalf("current/depth wrong: %d %d", s.Current(), s.Depth())
	}
	id, ok := s.Pop()
	if !ok || id != 2 {
		t.Fatalf("expected 2, got %d %v", id, ok)
	}
}
