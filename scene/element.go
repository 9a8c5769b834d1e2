package scene

import (
	"time"

	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/tween"
	"github.com/lixenwraith/folio/vmath"
)

// Class is the nudging context of a reactive element
type Class uint8

const (
	ClassTitleLetter Class = iota
	ClassSubtitleLetter
	ClassHeadingLetter
	ClassSocialIcon
	ClassBlock
	ClassProfileImage
)

var classNames = [...]string{
	ClassTitleLetter:    "title",
	ClassSubtitleLetter: "subtitle",
	ClassHeadingLetter:  "heading",
	ClassSocialIcon:     "social",
	ClassBlock:          "block",
	ClassProfileImage:   "profile",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

// Scale groups classes by how fast they follow their target
type Scale uint8

const (
	ScaleLetter Scale = iota
	ScaleBlock
)

// Scale returns letter scale for glyphs and icons, block scale for larger elements
func (c Class) Scale() Scale {
	switch c {
	case ClassBlock, ClassProfileImage:
		return ScaleBlock
	}
	return ScaleLetter
}

// NudgeDuration returns the ease-out time toward a new target
func (s Scale) NudgeDuration() time.Duration {
	if s == ScaleBlock {
		return parameter.BlockNudgeDuration
	}
	return parameter.LetterNudgeDuration
}

// Element is a UI element displaced by nearby shapes
type Element struct {
	ID    string
	Class Class
	Glyph rune // 0 for non-glyph elements
	Label string

	rect   vmath.Rect
	offset *tween.Follower
}

// NewElement creates an element at rest on its layout rectangle
func NewElement(id string, class Class, glyph rune, rect vmath.Rect) *Element {
	return &Element{
		ID:     id,
		Class:  class,
		Glyph:  glyph,
		rect:   rect,
		offset: tween.NewFollower(tween.Power2Out),
	}
}

// Rect returns the layout rectangle without displacement
func (e *Element) Rect() vmath.Rect {
	return e.rect
}

// SetRect moves the layout rectangle, used on relayout and scroll
func (e *Element) SetRect(r vmath.Rect) {
	e.rect = r
}

// Offset returns the current animated displacement
func (e *Element) Offset(now time.Time) vmath.Vec2 {
	return e.offset.Value(now)
}

// Target returns the displacement the element is easing toward
func (e *Element) Target() vmath.Vec2 {
	return e.offset.Target()
}

// Center returns the on-screen center including displacement
func (e *Element) Center(now time.Time) vmath.Vec2 {
	return e.rect.Translate(e.Offset(now)).Center()
}

// Nudge eases the element toward target, superseding any in-flight animation
func (e *Element) Nudge(now time.Time, target vmath.Vec2) {
	e.offset.Retarget(now, target, e.Class.Scale().NudgeDuration())
}
