package tween

import "time"

// Tween animates a scalar from From to To over Duration
// Repeat < 0 repeats forever; Yoyo reverses direction on every repeat
// Sampling is pull based, callers read Value at the current time
type Tween struct {
	From     float64
	To       float64
	Duration time.Duration
	Ease     Ease
	Repeat   int
	Yoyo     bool

	start  time.Time
	killed bool
}

// New creates a one-shot tween starting at start
func New(start time.Time, from, to float64, d time.Duration, ease Ease) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{From: from, To: to, Duration: d, Ease: ease, start: start}
}

// Forever creates a yoyo tween repeating until killed
func Forever(start time.Time, from, to float64, d time.Duration, ease Ease) *Tween {
	t := New(start, from, to, d, ease)
	t.Repeat = -1
	t.Yoyo = true
	return t
}

// Start returns the tween's start time
func (t *Tween) Start() time.Time {
	return t.start
}

// Kill marks the tween stopped, owners stop sampling killed tweens
func (t *Tween) Kill() {
	if t != nil {
		t.killed = true
	}
}

// Killed reports whether Kill was called
func (t *Tween) Killed() bool {
	return t != nil && t.killed
}

// Done reports whether a finite tween has run its full course at now
func (t *Tween) Done(now time.Time) bool {
	if t.Repeat < 0 {
		return false
	}
	return !now.Before(t.start.Add(t.total()))
}

// Value samples the tween at now
func (t *Tween) Value(now time.Time) float64 {
	if t.Duration <= 0 {
		return t.To
	}

	elapsed := now.Sub(t.start)
	if elapsed <= 0 {
		return t.From
	}
	if t.Repeat >= 0 && elapsed >= t.total() {
		// Final leg of a yoyo with an odd number of repeats lands back on From
		if t.Yoyo && t.Repeat%2 == 1 {
			return t.From
		}
		return t.To
	}

	leg := int64(elapsed / t.Duration)
	p := float64(elapsed%t.Duration) / float64(t.Duration)
	if t.Yoyo && leg%2 == 1 {
		p = 1 - p
	}
	return t.From + (t.To-t.From)*t.Ease(p)
}

func (t *Tween) total() time.Duration {
	return t.Duration * time.Duration(t.Repeat+1)
}
