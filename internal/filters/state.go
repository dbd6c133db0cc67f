// Package filters implements the session-scoped facet filtering and the
// company-to-decision-maker cross-filter.
package filters

import "sync"

// All is the sentinel selection meaning "no constraint" for a facet.
// Setting a facet to All removes it.
const All = "All"

// FilterState holds the active facet selections for one session. The zero
// value is not usable; construct with NewState.
type FilterState struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewState returns an empty filter state.
func NewState() *FilterState {
	return &FilterState{values: make(map[string]string)}
}

// Set selects a value for the named facet, overwriting any prior selection.
// Selecting All (or the empty string) removes the facet instead.
func (s *FilterState) Set(name, value string) {
	if value == All || value == "" {
		s.Remove(name)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
}

// Remove drops the named facet.
func (s *FilterState) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, name)
}

// Clear drops every facet.
func (s *FilterState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
}

// Get returns the selection for a facet, if any.
func (s *FilterState) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	return v, ok
}

// Active returns a snapshot of the current selections.
func (s *FilterState) Active() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Len returns the number of active facets.
func (s *FilterState) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
