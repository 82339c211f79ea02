package status

import (
	"maps"
	"slices"
	"sync"
)

// Table maps metric keys to lazily allocated values of type T
// Callers cache the returned pointer and update it without locking
type Table[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func newTable[T any]() *Table[T] {
	return &Table[T]{items: make(map[string]*T)}
}

// Get returns the value for key, allocating it on first use
func (t *Table[T]) Get(key string) *T {
	t.mu.RLock()
	ptr, ok := t.items[key]
	t.mu.RUnlock()
	if ok {
		return ptr
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if ptr, ok = t.items[key]; !ok {
		ptr = new(T)
		t.items[key] = ptr
	}
	return ptr
}

// Len returns the number of registered keys
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}

// Each visits values in key order
func (t *Table[T]) Each(fn func(key string, v *T)) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, k := range slices.Sorted(maps.Keys(t.items)) {
		fn(k, t.items[k])
	}
}
