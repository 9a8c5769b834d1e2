package server

import (
	"time"

	"github.com/lixenwraith/folio/layout"
	"github.com/lixenwraith/folio/scene"
)

// ShapeState is one floating shape as sent to viewers
type ShapeState struct {
	ID           uint64  `json:"id"`
	Kind         string  `json:"kind"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	Rotation     float64 `json:"rotation"`
	Outline      string  `json:"outline"`
	OutlineWidth float64 `json:"outlineWidth"`
	Source       string  `json:"src"`
	Placeholder  bool    `json:"placeholder,omitempty"`
}

// ElementState is a reactive element's layout rectangle and displacement
type ElementState struct {
	ID      string  `json:"id"`
	Class   string  `json:"class"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	DX      float64 `json:"dx"`
	DY      float64 `json:"dy"`
	Opacity float64 `json:"opacity"`
}

// TextState is a static text block, positioned and faded but never displaced
type TextState struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Opacity float64 `json:"opacity"`
}

// Frame is one scene update pushed over the websocket
type Frame struct {
	T        int64          `json:"t"`
	Scroll   float64        `json:"scroll"`
	Shapes   []ShapeState   `json:"shapes"`
	Elements []ElementState `json:"elements"`
	About    TextState      `json:"about"`
}

// BuildFrame captures shapes and home at now
func BuildFrame(now time.Time, shapes []*scene.Shape, home *layout.Home) Frame {
	f := Frame{
		T:        now.UnixMilli(),
		Scroll:   home.Scroll(),
		Shapes:   make([]ShapeState, 0, len(shapes)),
		Elements: make([]ElementState, 0, len(home.Elements())),
	}

	for _, s := range shapes {
		b := s.Bounds()
		f.Shapes = append(f.Shapes, ShapeState{
			ID:           s.ID,
			Kind:         s.Geometry.Kind.String(),
			X:            b.X,
			Y:            b.Y,
			Width:        b.W,
			Height:       b.H,
			Rotation:     s.Transform.Rotation,
			Outline:      s.Outline,
			OutlineWidth: s.OutlineWidth,
			Source:       s.Source,
			Placeholder:  s.Placeholder,
		})
	}

	px := home.Parallax()
	para := home.Paragraph()
	f.About = TextState{X: para.X, Y: para.Y, Width: para.W, Height: para.H, Opacity: px.AboutOpacity}

	for _, e := range home.Elements() {
		r := e.Rect()
		off := e.Offset(now)
		opacity := px.HeroOpacity
		if home.SectionOf(e) == layout.SectionAbout {
			opacity = px.AboutOpacity
		}
		f.Elements = append(f.Elements, ElementState{
			ID:      e.ID,
			Class:   e.Class.String(),
			X:       r.X,
			Y:       r.Y,
			Width:   r.W,
			Height:  r.H,
			DX:      off.X,
			DY:      off.Y,
			Opacity: opacity,
		})
	}
	return f
}
