package filters

import (
	"sync"

	"github.com/google/uuid"
)

// Registry holds one FilterState per dashboard session, keyed by the state ID
// stored in the session cookie.
type Registry struct {
	mu     sync.Mutex
	states map[uuid.UUID]*FilterState
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{states: make(map[uuid.UUID]*FilterState)}
}

// Get returns the state for the given ID, creating it on first use.
func (r *Registry) Get(id uuid.UUID) *FilterState {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.states[id]
	if !ok {
		state = NewState()
		r.states[id] = state
	}
	return state
}

// Drop forgets the state for the given ID.
func (r *Registry) Drop(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, id)
}

// Len returns the number of sessions with a registered state.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}
