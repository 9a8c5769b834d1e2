package layout

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/folio/parameter"
)

// Parallax is the per-section displacement and fade for a scroll position
type Parallax struct {
	HeroShift    float64 // translateY applied to the hero section
	HeroOpacity  float64
	AboutShift   float64 // translateY applied to the about section
	AboutOpacity float64
}

// ParallaxAt computes section transforms for scroll y in a viewport of height h
func ParallaxAt(scroll, h float64) Parallax {
	if h <= 0 {
		return Parallax{HeroOpacity: 1}
	}
	progress := math.Min(scroll/h, 1)
	return Parallax{
		HeroShift:    -scroll * parameter.HeroScrollFactor,
		HeroOpacity:  math.Max(0, 1-progress*parameter.HeroFadeFactor),
		AboutShift:   math.Max(0, h-scroll),
		AboutOpacity: math.Min(1, progress*parameter.AboutFadeFactor),
	}
}

// scrollSpring smooths the displayed scroll position toward the requested one
type scrollSpring struct {
	spring harmonica.Spring
	target float64
	pos    float64
	vel    float64
}

// newScrollSpring steps once per frame of the given period
func newScrollSpring(frame time.Duration) scrollSpring {
	if frame <= 0 {
		frame = parameter.FrameUpdateInterval
	}
	return scrollSpring{
		spring: harmonica.NewSpring(frame.Seconds(), parameter.ScrollSpringFreq, parameter.ScrollSpringDamp),
	}
}

// step advances one frame, returns true while still moving
func (s *scrollSpring) step() bool {
	if s.settled() {
		s.pos, s.vel = s.target, 0
		return false
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	return true
}

func (s *scrollSpring) settled() bool {
	return math.Abs(s.pos-s.target) < parameter.ScrollSettleDelta && math.Abs(s.vel) < parameter.ScrollSettleDelta
}

// snap jumps to the target with no motion
func (s *scrollSpring) snap() {
	s.pos, s.vel = s.target, 0
}
