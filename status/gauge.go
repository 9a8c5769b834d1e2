package status

import (
	"math"
	"sync"
	"sync/atomic"
)

// Gauge is a float64 metric, readers never block
// The zero value reads 0 and has no samples
type Gauge struct {
	mu     sync.Mutex // serializes writers
	seeded bool
	bits   atomic.Uint64
}

// Get returns the current reading
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Observe folds sample into an exponential moving average with weight alpha
// The first sample seeds the average
func (g *Gauge) Observe(sample, alpha float64) float64 {
	return g.update(func(cur float64, first bool) float64 {
		if first {
			return sample
		}
		return cur + alpha*(sample-cur)
	})
}

// Peak keeps the largest sample seen
func (g *Gauge) Peak(sample float64) float64 {
	return g.update(func(cur float64, first bool) float64 {
		if first || sample > cur {
			return sample
		}
		return cur
	})
}

func (g *Gauge) update(fn func(cur float64, first bool) float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	next := fn(g.Get(), !g.seeded)
	g.seeded = true
	g.bits.Store(math.Float64bits(next))
	return next
}
