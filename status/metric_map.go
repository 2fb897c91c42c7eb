package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap is a named set of metric cells of type T
// Systems resolve cells once at construction and write them without locking
type MetricMap[T any] struct {
	mu    sync.Mutex
	items map[string]*T
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the cell for key, allocating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()

	ptr, ok := m.items[key]
	if !ok {
		ptr = new(T)
		m.items[key] = ptr
	}
	return ptr
}

// Lookup returns the cell for key without allocating
func (m *MetricMap[T]) Lookup(key string) (*T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ptr, ok := m.items[key]
	return ptr, ok
}

// Range calls fn for every cell in key order
// The map is copied first, so fn may call Get on the same map
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.Lock()
	items := maps.Clone(m.items)
	m.mu.Unlock()

	for _, k := range slices.Sorted(maps.Keys(items)) {
		fn(k, items[k])
	}
}

// Keys returns the metric names in order
func (m *MetricMap[T]) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.items))
}

// Count returns the number of cells
func (m *MetricMap[T]) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
