package system

import (
	"time"

	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/scene"
	"github.com/lixenwraith/folio/tween"
)

// Animator drives shapes along their traversal, wave and rotation channels
type Animator struct {
	w *World
}

// NewAnimator creates an animator over w
func NewAnimator(w *World) *Animator {
	return &Animator{w: w}
}

// Start creates the motion channels of s and registers its per-frame task
// The frame task is attached to the shape and cancelled on release
func (a *Animator) Start(s *scene.Shape, now time.Time) {
	w := a.w

	travel := w.Viewport.Width + parameter.OffscreenMargin
	ease := tween.TraversalEases[w.Rng.Intn(len(tween.TraversalEases))]
	s.Motion.Traversal = tween.New(now, 0, travel,
		w.uniform(parameter.TraversalDurationMin, parameter.TraversalDurationMax), ease)

	amplitude := w.between(-parameter.WaveAmplitudeMax, 2*parameter.WaveAmplitudeMax)
	s.Motion.Wave = tween.Forever(now, 0, amplitude,
		w.uniform(parameter.WaveDurationMin, parameter.WaveDurationMax), tween.SineInOut)

	if s.Geometry.Rotates() {
		angle := w.between(-parameter.RotationRange/2, parameter.RotationRange)
		s.Motion.Rotation = tween.New(now, 0, angle,
			w.uniform(parameter.RotationDurationMin, parameter.RotationDurationMax), tween.SineInOut)
	}

	s.Transform = s.Motion.Sample(now, s.Geometry.BaseRotation)
	w.Surface.SetTransform(s.Handle, s.Transform)

	s.Attach(w.Sched.OnFrame(func(now time.Time) {
		a.step(s, now)
	}))
}

// step samples the channels, pushes the transform and releases on traversal completion
func (a *Animator) step(s *scene.Shape, now time.Time) {
	if s.Released() {
		return
	}
	s.Transform = s.Motion.Sample(now, s.Geometry.BaseRotation)
	a.w.Surface.SetTransform(s.Handle, s.Transform)

	if s.Motion.Traversal.Done(now) {
		a.w.Release(s, ReleaseCompleted)
	}
}
