package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the mock forward by d and returns the new time
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	return m.currentTime
}

// Step advances the mock in increments of step up to total, running sched after each increment
// Simulates a frame driver so interval and frame tasks fire at their natural cadence
func (m *MockTimeProvider) Step(sched *Scheduler, total, step time.Duration) {
	if step <= 0 {
		step = total
	}
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		d := step
		if rem := total - elapsed; rem < d {
			d = rem
		}
		sched.Advance(m.Advance(d))
	}
}
