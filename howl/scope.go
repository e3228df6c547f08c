package howl

import (
	"fmt"
	"sort"
)

// scopeFrame is one variable environment, keyed to the block that owns it.
type scopeFrame struct {
	owner  BlockID
	values map[string]Value
}

func newScopeFrame(owner BlockID) scopeFrame {
	return scopeFrame{owner: owner, values: make(map[string]Value)}
}

// ScopeStack is the ordered set of variable frames. The bottom frame is the
// global scope and lives for the interpreter's lifetime; further frames are
// pushed and popped in lock-step with scope-creating blocks.
type ScopeStack struct {
	frames []scopeFrame
}

func NewScopeStack() *ScopeStack {
	return &ScopeStack{frames: []scopeFrame{newScopeFrame(0)}}
}

// Define binds a name in the innermost frame, shadowing any outer binding.
func (s *ScopeStack) Define(name string, v Value) {
	s.frames[len(s.frames)-1].values[name] = v
}

// GetVar walks frames innermost to outermost.
func (s *ScopeStack) GetVar(name string) (Value, error) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i].values[name]; ok {
			return v, nil
		}
	}
	return Value{}, fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
}

// SetVar rebinds the nearest existing binding; unlike Define it never
// creates one.
func (s *ScopeStack) SetVar(name string, v Value) error {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if _, ok := s.frames[i].values[name]; ok {
			s.frames[i].values[name] = v
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
}

func (s *ScopeStack) IsDefined(name string) bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if _, ok := s.frames[i].values[name]; ok {
			return true
		}
	}
	return false
}

// Push opens a new frame owned by the given block.
func (s *ScopeStack) Push(owner BlockID) {
	s.frames = append(s.frames, newScopeFrame(owner))
}

// Pop discards the innermost frame. The global frame is never popped.
func (s *ScopeStack) Pop() {
	if len(s.frames) > 1 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

func (s *ScopeStack) Depth() int {
	return len(s.frames)
}

// VisibleNames returns every currently visible variable name, sorted and
// deduplicated (shadowed names appear once).
func (s *ScopeStack) VisibleNames() []string {
	seen := make(map[string]struct{})
	var names []string
	for i := len(s.frames) - 1; i >= 0; i-- {
		for name := range s.frames[i].values {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
