package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/scene"
	"github.com/lixenwraith/folio/vmath"
)

// Profile is how strongly and from how far a class of element is pushed
type Profile struct {
	Force       float64
	RadiusScale float64
	MinRadius   float64
}

// Radius returns the effective push radius for a shape radius r
func (p Profile) Radius(r float64) float64 {
	return max(r*p.RadiusScale, p.MinRadius)
}

// Profiles maps each element class to its push profile
var Profiles = map[scene.Class]Profile{
	scene.ClassTitleLetter:    {Force: parameter.ForceTitleLetter, RadiusScale: 1},
	scene.ClassSubtitleLetter: {Force: parameter.ForceSubtitleLetter, RadiusScale: 1},
	scene.ClassHeadingLetter:  {Force: parameter.ForceHeadingLetter, RadiusScale: 1},
	scene.ClassSocialIcon: {
		Force:       parameter.ForceSocialIcon,
		RadiusScale: parameter.SocialIconRadiusScale,
		MinRadius:   parameter.SocialIconMinRadius,
	},
	scene.ClassBlock: {Force: parameter.ForceBlock, RadiusScale: 1},
	scene.ClassProfileImage: {
		Force:       parameter.ForceProfileImage,
		RadiusScale: 1,
		MinRadius:   parameter.ProfileImageMinRadius,
	},
}

// ElementSource supplies the reactive elements currently laid out
type ElementSource interface {
	Elements() []*scene.Element
}

// ShapeRadius returns the collision radius of s
func ShapeRadius(s *scene.Shape) float64 {
	return parameter.CollisionRadiusFactor * (s.Geometry.Width + 2*s.OutlineWidth)
}

// ComputeTargets returns the displacement target of every element, index aligned
// Targets start at zero each call and every shape within range adds its push
// Also returns the number of shape-element contacts
func ComputeTargets(shapes []*scene.Shape, elements []*scene.Element, now time.Time) ([]vmath.Vec2, int) {
	targets := make([]vmath.Vec2, len(elements))
	if len(shapes) == 0 {
		return targets, 0
	}

	centers := make([]vmath.Vec2, len(shapes))
	radii := make([]float64, len(shapes))
	for i, s := range shapes {
		centers[i] = s.Center()
		radii[i] = ShapeRadius(s)
	}

	contacts := 0
	for i, e := range elements {
		profile, ok := Profiles[e.Class]
		if !ok {
			continue
		}
		ec := e.Center(now)
		for j := range shapes {
			r := profile.Radius(radii[j])
			d := vmath.Distance(centers[j], ec)
			if d <= 0 || d >= r {
				continue
			}
			influence := (r - d) / r
			theta := vmath.Bearing(centers[j], ec)
			targets[i] = targets[i].Add(vmath.Polar(theta, influence*profile.Force))
			contacts++
		}
	}
	return targets, contacts
}

// Nudger periodically pushes reactive elements away from nearby shapes
type Nudger struct {
	w        *World
	elements ElementSource

	statTicks    *atomic.Int64
	statContacts *atomic.Int64
}

// NewNudger creates a nudger over the world's shapes and src's elements
func NewNudger(w *World, src ElementSource) *Nudger {
	n := &Nudger{w: w, elements: src}
	n.statTicks = w.Status.Ints.Get("nudge.ticks")
	n.statContacts = w.Status.Ints.Get("nudge.contacts")
	return n
}

// Tick recomputes every target from the current shape positions, then retargets the elements
func (n *Nudger) Tick(now time.Time) {
	n.statTicks.Add(1)
	if n.elements == nil {
		return
	}

	elements := n.elements.Elements()
	targets, contacts := ComputeTargets(n.w.Shapes.Snapshot(), elements, now)
	n.statContacts.Store(int64(contacts))

	for i, e := range elements {
		e.Nudge(now, targets[i])
	}
}
