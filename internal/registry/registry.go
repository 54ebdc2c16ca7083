// Package registry maps keys to codecs registered by other packages during
// initialization.
package registry

import "sync"

// Registry is a keyed table of values, usually payload codecs.
//
// Registration normally happens from init functions; lookups may run
// concurrently with each other and with late registrations.
type Registry[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// New returns an empty registry.
func New[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{entries: make(map[K]V)}
}

// Register associates v with key, replacing any earlier registration.
func (r *Registry[K, V]) Register(key K, v V) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = v
}

// Get returns the value registered for key.
// The boolean is false if nothing is registered.
func (r *Registry[K, V]) Get(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[key]
	return v, ok
}

// Len returns the number of registered keys.
func (r *Registry[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
