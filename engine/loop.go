package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/folio/parameter"
)

// Loop owns a Scheduler and drives it from a single goroutine
// All scheduled tasks, posted functions and the frame hook run on that goroutine
type Loop struct {
	clock    Clock
	sched    *Scheduler
	interval time.Duration

	posts chan func()

	// AfterFrame runs after each scheduler advance, typically the render pass
	// Must be set before Start
	AfterFrame func(now time.Time)

	frames atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewLoop creates a loop advancing its scheduler every interval
func NewLoop(clock Clock, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = parameter.FrameUpdateInterval
	}
	return &Loop{
		clock:    clock,
		sched:    NewScheduler(clock.Now()),
		interval: interval,
		posts:    make(chan func(), parameter.PostQueueSize),
		stopChan: make(chan struct{}),
	}
}

// Scheduler returns the loop's scheduler
// Only touch it from the loop goroutine or before Start
func (l *Loop) Scheduler() *Scheduler {
	return l.sched
}

// Interval returns the frame period
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Frames returns the number of frames advanced so far
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// Running reports whether the loop goroutine is active
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Post queues fn to run on the loop goroutine
// Returns false if the loop has stopped
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopChan:
		return false
	default:
	}
	select {
	case l.posts <- fn:
		return true
	case <-l.stopChan:
		return false
	}
}

// Do runs fn on the loop goroutine and waits for it to finish
// Returns false if the loop stopped before fn ran
func (l *Loop) Do(fn func()) bool {
	done := make(chan struct{})
	if !l.Post(func() {
		defer close(done)
		fn()
	}) {
		return false
	}
	select {
	case <-done:
		return true
	case <-l.stopChan:
		return false
	}
}

// Start launches the loop goroutine
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		Go(l.run)
	}
}

// Stop halts the loop and waits for the goroutine to exit
// Must not be called from the loop goroutine
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
		if l.running.Load() {
			l.wg.Wait()
		}
		l.running.Store(false)
	})
}

func (l *Loop) run() {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return

		case fn := <-l.posts:
			fn()

		case <-ticker.C:
			now := l.clock.Now()
			l.sched.Advance(now)
			if l.AfterFrame != nil {
				l.AfterFrame(now)
			}
			l.frames.Add(1)
		}
	}
}
