package tween

import (
	"time"

	"github.com/lixenwraith/folio/vmath"
)

// Follower eases a 2D offset toward a target
// Retarget overwrites any in-flight animation, starting from the current position
type Follower struct {
	from     vmath.Vec2
	to       vmath.Vec2
	start    time.Time
	duration time.Duration
	ease     Ease
}

// NewFollower creates a follower resting at the origin
func NewFollower(ease Ease) *Follower {
	if ease == nil {
		ease = Power2Out
	}
	return &Follower{ease: ease}
}

// Value samples the follower at now
func (f *Follower) Value(now time.Time) vmath.Vec2 {
	if f.duration <= 0 {
		return f.to
	}
	elapsed := now.Sub(f.start)
	if elapsed <= 0 {
		return f.from
	}
	if elapsed >= f.duration {
		return f.to
	}
	p := f.ease(float64(elapsed) / float64(f.duration))
	return vmath.Vec2{
		X: vmath.Lerp(f.from.X, f.to.X, p),
		Y: vmath.Lerp(f.from.Y, f.to.Y, p),
	}
}

// Target returns the position the follower is heading to
func (f *Follower) Target() vmath.Vec2 {
	return f.to
}

// Retarget starts a new animation from the current value toward target
func (f *Follower) Retarget(now time.Time, target vmath.Vec2, d time.Duration) {
	f.from = f.Value(now)
	f.to = target
	f.start = now
	f.duration = d
}

// Snap places the follower at v with no animation
func (f *Follower) Snap(v vmath.Vec2) {
	f.from, f.to = v, v
	f.duration = 0
}
