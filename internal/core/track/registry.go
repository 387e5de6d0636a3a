package track

import (
	"fmt"
	"slices"
	"sync"
)

// Registry manages scheduling strategies by policy name.
type Registry struct {
	mu         sync.RWMutex
	strategies map[Policy]Strategy
}

func NewRegistry() *Registry {
	return &Registry{
		strategies: make(map[Policy]Strategy),
	}
}

// DefaultRegistry returns a registry holding SSTF and SCAN.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewSSTF())
	r.Register(NewSCAN())
	return r
}

func (r *Registry) Register(s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies[s.Name()] = s
}

func (r *Registry) Get(name Policy) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: policy %q not registered", ErrInvalidInput, name)
	}
	return s, nil
}

func (r *Registry) List() []Policy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]Policy, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
