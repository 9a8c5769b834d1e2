package status

import "sync/atomic"

// Registry is the central metrics facade
// Components cache pointers at construction; hot paths write the atomics directly
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Gauge]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Gauge](),
	}
}

// Snapshot is a point-in-time copy of every metric, keyed by name
type Snapshot struct {
	Bools  map[string]bool    `json:"bools,omitempty"`
	Ints   map[string]int64   `json:"ints,omitempty"`
	Floats map[string]float64 `json:"floats,omitempty"`
}

// Snapshot reads every metric
func (r *Registry) Snapshot() Snapshot {
	s := Snapshot{
		Bools:  make(map[string]bool),
		Ints:   make(map[string]int64),
		Floats: make(map[string]float64),
	}
	r.Bools.Range(func(k string, v *atomic.Bool) { s.Bools[k] = v.Load() })
	r.Ints.Range(func(k string, v *atomic.Int64) { s.Ints[k] = v.Load() })
	r.Floats.Range(func(k string, v *Gauge) { s.Floats[k] = v.Get() })
	return s
}
