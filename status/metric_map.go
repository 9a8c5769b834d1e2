package status

import (
	"slices"
	"sync"
)

// MetricMap is a concurrency-safe set of named metrics of type T
// Callers keep the pointer from Get and write it directly
type MetricMap[T any] struct {
	items sync.Map // string -> *T
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the metric for key, creating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	if v, ok := m.items.Load(key); ok {
		return v.(*T)
	}
	v, _ := m.items.LoadOrStore(key, new(T))
	return v.(*T)
}

// Range visits every metric in sorted key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	var keys []string
	m.items.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	slices.Sort(keys)

	for _, k := range keys {
		if v, ok := m.items.Load(k); ok {
			fn(k, v.(*T))
		}
	}
}
