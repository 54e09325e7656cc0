// Package handles provides thread-safe bookkeeping for native handles.
//
// GLFW hands out raw pointers for monitors and windows and never tells us
// when they stop being valid, except through callbacks. Set tracks which
// handles are known to be alive; Map associates Go state with a handle so
// C callbacks that only carry the handle can find it again.
//
// All methods are safe for concurrent use.
package handles

import (
	"sync"
)

// Set is a set of live handles. The zero value is an empty set.
type Set[K comparable] struct {
	mu    sync.RWMutex
	items map[K]struct{}
}

// Add marks k alive. It reports whether k was newly added.
func (s *Set[K]) Add(k K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items == nil {
		s.items = make(map[K]struct{})
	}
	if _, ok := s.items[k]; ok {
		return false
	}
	s.items[k] = struct{}{}
	return true
}

// Remove forgets k. It reports whether k was present.
func (s *Set[K]) Remove(k K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[k]; !ok {
		return false
	}
	delete(s.items, k)
	return true
}

// Contains reports whether k is alive.
func (s *Set[K]) Contains(k K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[k]
	return ok
}

// Replace makes keys the exact contents of the set and returns the members
// that were present before but are not in keys.
func (s *Set[K]) Replace(keys []K) (stale []K) {
	next := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		next[k] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.items {
		if _, ok := next[k]; !ok {
			stale = append(stale, k)
		}
	}
	s.items = next
	return stale
}

// Clear empties the set.
func (s *Set[K]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Len returns the number of live handles.
// Useful for debugging and testing leaks.
func (s *Set[K]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Map associates a value with each registered handle. The zero value is an
// empty map.
type Map[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// Register stores v under k, replacing any previous value.
func (m *Map[K, V]) Register(k K, v V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.items == nil {
		m.items = make(map[K]V)
	}
	m.items[k] = v
}

// Lookup retrieves the value registered under k.
func (m *Map[K, V]) Lookup(k K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[k]
	return v, ok
}

// Unregister removes k and returns the value it held.
func (m *Map[K, V]) Unregister(k K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[k]
	delete(m.items, k)
	return v, ok
}
