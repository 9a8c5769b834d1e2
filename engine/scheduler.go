package engine

import (
	"container/heap"
	"log"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/folio/parameter"
)

// Task is a scheduled callback, now is the scheduler time it runs at
type Task func(now time.Time)

type timerKind uint8

const (
	timerOnce timerKind = iota
	timerRepeat
	timerFrame
)

// Timer is the cancellation handle of a scheduled task
// Cancel is idempotent and safe on a nil handle
type Timer struct {
	s        *Scheduler
	task     Task
	kind     timerKind
	deadline time.Time
	interval time.Duration
	seq      uint64
	index    int // heap index, -1 when not queued

	cancelled bool
	done      bool
}

// Cancel stops the task from running again
// Returns true only for the call that transitioned a live timer to cancelled
func (t *Timer) Cancel() bool {
	if t == nil || t.cancelled || t.done {
		return false
	}
	t.cancelled = true
	if t.index >= 0 {
		heap.Remove(&t.s.queue, t.index)
	}
	if t.kind == timerFrame {
		t.s.frameDirty = true
	}
	return true
}

// Active reports whether the task can still run
func (t *Timer) Active() bool {
	return t != nil && !t.cancelled && !t.done
}

// Deadline returns the next time a timed task is due, zero for frame tasks
func (t *Timer) Deadline() time.Time {
	if t == nil || t.kind == timerFrame {
		return time.Time{}
	}
	return t.deadline
}

// Scheduler is a single-threaded cooperative task scheduler
// Every task runs to completion inside Advance; there is no preemption
// Not safe for concurrent use, drive it from one goroutine (see Loop)
type Scheduler struct {
	now        time.Time
	queue      timerQueue
	frames     []*Timer
	frameDirty bool
	seq        uint64

	// OnPanic is invoked with the recovered value when a task panics
	// The scheduler keeps running other tasks either way
	OnPanic func(r any)
}

// NewScheduler creates a scheduler whose clock starts at start
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{now: start}
}

// Now returns the scheduler's current time
func (s *Scheduler) Now() time.Time {
	return s.now
}

// After runs task once, d after the current scheduler time
func (s *Scheduler) After(d time.Duration, task Task) *Timer {
	if d < 0 {
		d = 0
	}
	return s.push(&Timer{kind: timerOnce, task: task, deadline: s.now.Add(d)})
}

// Every runs task repeatedly with period d until cancelled
func (s *Scheduler) Every(d time.Duration, task Task) *Timer {
	if d < parameter.MinRepeatInterval {
		d = parameter.MinRepeatInterval
	}
	return s.push(&Timer{kind: timerRepeat, task: task, deadline: s.now.Add(d), interval: d})
}

// OnFrame runs task on every Advance, after timed tasks
func (s *Scheduler) OnFrame(task Task) *Timer {
	s.seq++
	t := &Timer{s: s, kind: timerFrame, task: task, seq: s.seq, index: -1}
	s.frames = append(s.frames, t)
	return t
}

// Pending returns the number of queued timed tasks plus live frame tasks
func (s *Scheduler) Pending() int {
	n := len(s.queue)
	for _, f := range s.frames {
		if f.Active() {
			n++
		}
	}
	return n
}

// Advance moves the clock to now and runs everything due
// Timed tasks run in deadline order, ties in scheduling order; frame tasks run last
// A repeating task that fell behind fires once and re-anchors at now+interval
// Returns the number of task invocations
func (s *Scheduler) Advance(now time.Time) int {
	if now.Before(s.now) {
		now = s.now
	}

	ran := 0
	for len(s.queue) > 0 && !s.queue[0].deadline.After(now) {
		t := heap.Pop(&s.queue).(*Timer)
		s.now = t.deadline

		if t.kind == timerOnce {
			t.done = true
		}
		s.run(t)
		ran++

		if t.kind == timerRepeat && !t.cancelled {
			t.deadline = t.deadline.Add(t.interval)
			if !t.deadline.After(now) {
				t.deadline = now.Add(t.interval)
			}
			heap.Push(&s.queue, t)
		}
	}
	s.now = now

	// Snapshot so frame tasks may register or cancel frames while iterating
	frames := append([]*Timer(nil), s.frames...)
	for _, f := range frames {
		if !f.Active() {
			continue
		}
		s.run(f)
		ran++
	}

	if s.frameDirty {
		s.compactFrames()
	}
	return ran
}

// run executes a task, recovering panics so one failing task cannot stop the loop
func (s *Scheduler) run(t *Timer) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("scheduler: task panic: %v\n%s", r, debug.Stack())
			if s.OnPanic != nil {
				s.OnPanic(r)
			}
		}
	}()
	t.task(s.now)
}

func (s *Scheduler) push(t *Timer) *Timer {
	s.seq++
	t.s = s
	t.seq = s.seq
	heap.Push(&s.queue, t)
	return t
}

func (s *Scheduler) compactFrames() {
	live := s.frames[:0]
	for _, f := range s.frames {
		if f.Active() {
			live = append(live, f)
		}
	}
	for i := len(live); i < len(s.frames); i++ {
		s.frames[i] = nil
	}
	s.frames = live
	s.frameDirty = false
}

// timerQueue is a min-heap on (deadline, seq)
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].deadline.Equal(q[j].deadline) {
		return q[i].seq < q[j].seq
	}
	return q[i].deadline.Before(q[j].deadline)
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
