package scene

import (
	"image"
	"time"

	"github.com/lixenwraith/folio/tween"
	"github.com/lixenwraith/folio/vmath"
)

// Canceler is a pending task or channel released together with its shape
type Canceler interface {
	Cancel() bool
}

// Motion holds the three independent animation channels of a shape
type Motion struct {
	Traversal *tween.Tween
	Wave      *tween.Tween
	Rotation  *tween.Tween // nil for geometries that do not rotate
}

// Kill stops every channel
func (m *Motion) Kill() {
	m.Traversal.Kill()
	m.Wave.Kill()
	m.Rotation.Kill()
}

// Sample evaluates the channels at now
func (m *Motion) Sample(now time.Time, base float64) Transform {
	t := Transform{Rotation: base}
	if m.Traversal != nil {
		t.X = m.Traversal.Value(now)
	}
	if m.Wave != nil {
		t.Y = m.Wave.Value(now)
	}
	if m.Rotation != nil {
		t.Rotation = base + m.Rotation.Value(now)
	}
	return t
}

// Shape is a transient floating image
type Shape struct {
	ID           uint64
	Geometry     Geometry
	OutlineWidth float64
	Outline      string
	Source       string
	Image        image.Image
	Placeholder  bool
	Origin       vmath.Vec2
	Transform    Transform
	SpawnedAt    time.Time
	Handle       Handle
	Motion       Motion

	cancels  []Canceler
	released bool
}

// Bounds returns the on-screen rectangle, rotation ignored
func (s *Shape) Bounds() vmath.Rect {
	return vmath.Rect{
		X: s.Origin.X + s.Transform.X,
		Y: s.Origin.Y + s.Transform.Y,
		W: s.Geometry.Width,
		H: s.Geometry.Height,
	}
}

// Center returns the on-screen center, rotation about the center leaves it fixed
func (s *Shape) Center() vmath.Vec2 {
	return s.Bounds().Center()
}

// Attach registers c to be cancelled when the shape is released
func (s *Shape) Attach(c Canceler) {
	s.cancels = append(s.cancels, c)
}

// Release marks the shape released and cancels everything attached to it
// Only the first call returns true; later calls are no-ops
func (s *Shape) Release() bool {
	if s.released {
		return false
	}
	s.released = true

	for _, c := range s.cancels {
		c.Cancel()
	}
	s.cancels = nil
	s.Motion.Kill()
	s.Image = nil
	return true
}

// Released reports whether Release has run
func (s *Shape) Released() bool {
	return s.released
}
