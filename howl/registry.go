package howl

import (
	"sort"
	"sync"
)

// Handler is an operation implementation. It receives exclusive access to
// the interpreter for the duration of one dispatch step.
type Handler func(*Interp) error

// Registry maps operation names to handlers. Lookup returns the handler
// value itself, so invocation never holds the registry lock: a running
// handler may register or replace operations, including its own name.
// Re-registering an existing name replaces it.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Handler)}
}

func (r *Registry) Register(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[name] = h
}

func (r *Registry) Lookup(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.ops[name]
	return h, ok
}

// Names returns every registered operation name, sorted. The REPL uses
// this for completion.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ops)
}
