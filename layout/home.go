package layout

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/scene"
	"github.com/lixenwraith/folio/vmath"
)

// Section is the page region an element scrolls with
type Section uint8

const (
	SectionHero Section = iota
	SectionAbout
)

type placed struct {
	el      *scene.Element
	section Section
	base    vmath.Rect // page coordinates, before scroll
}

// Home is the landing page layout in viewport pixel space
// Element rectangles track scroll so proximity sees on-screen positions
// Not safe for concurrent use, owned by the loop goroutine
type Home struct {
	vp       scene.Viewport
	items    []placed
	elements []*scene.Element
	byID     map[string]*scene.Element
	scroll   scrollSpring
	parallax Parallax

	// About paragraph, drawn but never pushed by shapes
	paraBase vmath.Rect
	para     vmath.Rect
}

// NewHome lays out the page for vp, scroll easing steps once per frame period
func NewHome(vp scene.Viewport, frame time.Duration) *Home {
	h := &Home{
		scroll: newScrollSpring(frame),
		byID:   make(map[string]*scene.Element),
	}
	h.build()
	h.Resize(vp)
	return h
}

// Elements returns the reactive elements in stable order
func (h *Home) Elements() []*scene.Element {
	return h.elements
}

// Paragraph returns the about text rectangle in the viewport
// It scrolls and fades with the about section but is not reactive
func (h *Home) Paragraph() vmath.Rect {
	return h.para
}

// Element returns the element with id
func (h *Home) Element(id string) (*scene.Element, bool) {
	e, ok := h.byID[id]
	return e, ok
}

// SectionOf returns the section e belongs to
func (h *Home) SectionOf(e *scene.Element) Section {
	for _, p := range h.items {
		if p.el == e {
			return p.section
		}
	}
	return SectionHero
}

// Viewport returns the current viewport
func (h *Home) Viewport() scene.Viewport {
	return h.vp
}

// Parallax returns the section transforms at the displayed scroll position
func (h *Home) Parallax() Parallax {
	return h.parallax
}

// Scroll returns the displayed (smoothed) scroll position
func (h *Home) Scroll() float64 {
	return h.scroll.pos
}

// MaxScroll is the scroll extent of the two full-height sections
func (h *Home) MaxScroll() float64 {
	return h.vp.Height
}

// ScrollTo sets the requested scroll position, clamped to the page
func (h *Home) ScrollTo(y float64) {
	h.scroll.target = vmath.Clamp(y, 0, h.MaxScroll())
}

// ScrollBy moves the requested scroll position by dy
func (h *Home) ScrollBy(dy float64) {
	h.ScrollTo(h.scroll.target + dy)
}

// Step advances the scroll spring one frame and moves element rectangles
// Returns true while the page is still moving
func (h *Home) Step() bool {
	moving := h.scroll.step()
	h.apply()
	return moving
}

// Resize recomputes every base rectangle for vp, scroll position is kept in range
func (h *Home) Resize(vp scene.Viewport) {
	h.vp = vp
	h.measure()
	h.scroll.target = vmath.Clamp(h.scroll.target, 0, h.MaxScroll())
	h.scroll.snap()
	h.apply()
}

// apply translates base rectangles into the viewport for the displayed scroll
func (h *Home) apply() {
	s := h.scroll.pos
	h.parallax = ParallaxAt(s, h.vp.Height)
	h.para = h.paraBase.Translate(vmath.V(0, h.parallax.AboutShift-s))
	for _, p := range h.items {
		shift := h.parallax.HeroShift
		if p.section == SectionAbout {
			shift = h.parallax.AboutShift
		}
		p.el.SetRect(p.base.Translate(vmath.V(0, shift-s)))
	}
}

func (h *Home) add(id string, class scene.Class, glyph rune, section Section) {
	e := scene.NewElement(id, class, glyph, vmath.Rect{})
	h.items = append(h.items, placed{el: e, section: section})
	h.elements = append(h.elements, e)
	h.byID[id] = e
}

func (h *Home) addText(prefix, text string, class scene.Class, section Section) {
	i := 0
	for _, r := range text {
		if r != ' ' {
			h.add(fmt.Sprintf("%s-%d", prefix, i), class, r, section)
		}
		i++
	}
}

// build creates the elements once, measure positions them
func (h *Home) build() {
	h.addText("title", parameter.TitleFirst+" "+parameter.TitleLast, scene.ClassTitleLetter, SectionHero)
	h.addText("subtitle", parameter.Subtitle, scene.ClassSubtitleLetter, SectionHero)

	h.add("profile", scene.ClassProfileImage, 0, SectionAbout)
	h.byID["profile"].Label = parameter.ProfileImageSource
	h.addText("heading", parameter.AboutHeading, scene.ClassHeadingLetter, SectionAbout)
	for _, link := range parameter.SocialLinks {
		id := "social-" + link.Name
		h.add(id, scene.ClassSocialIcon, 0, SectionAbout)
		h.byID[id].Label = link.Name
	}
}

// rects is a cursor over items in build order
type rects struct {
	h *Home
	i int
}

func (r *rects) next(rect vmath.Rect) {
	r.h.items[r.i].base = rect
	r.i++
}

// line places glyphs of text left to right from x, skipping spaces
func (r *rects) line(text string, x, y, font, gap float64) {
	w := font * parameter.GlyphAspect
	for _, c := range text {
		if c == ' ' {
			x += gap
			continue
		}
		r.next(vmath.R(x, y, w, font))
		x += w
	}
}

func textWidth(text string, font, gap float64) float64 {
	w := 0.0
	for _, c := range text {
		if c == ' ' {
			w += gap
			continue
		}
		w += font * parameter.GlyphAspect
	}
	return w
}

func (h *Home) measure() {
	W, H := h.vp.Width, h.vp.Height
	mobile := h.vp.Mobile()
	cur := &rects{h: h}

	// Hero, vertically centered in the first screen
	titleFont, subFont := parameter.TitleFontDesktop, parameter.SubtitleFontDesktop
	if mobile {
		titleFont, subFont = parameter.TitleFontMobile, parameter.SubtitleFontMobile
	}
	titleLines := 1
	if mobile {
		titleLines = 2
	}
	heroH := float64(titleLines)*titleFont + parameter.TitleMargin + subFont
	top := (H - heroH) / 2

	if mobile {
		first := textWidth(parameter.TitleFirst, titleFont, 0)
		last := textWidth(parameter.TitleLast, titleFont, 0)
		cur.line(parameter.TitleFirst, (W-first)/2, top, titleFont, 0)
		cur.line(parameter.TitleLast, (W-last)/2, top+titleFont, titleFont, 0)
	} else {
		full := parameter.TitleFirst + " " + parameter.TitleLast
		tw := textWidth(full, titleFont, parameter.TitleWordGap)
		cur.line(full, (W-tw)/2, top, titleFont, parameter.TitleWordGap)
	}
	subY := top + float64(titleLines)*titleFont + parameter.TitleMargin
	sw := textWidth(parameter.Subtitle, subFont, subFont*parameter.GlyphAspect)
	cur.line(parameter.Subtitle, (W-sw)/2, subY, subFont, subFont*parameter.GlyphAspect)

	// About, second screen
	contentW := math.Min(parameter.ContentMaxW, math.Max(W-2*parameter.PagePadding, 1))
	left := (W - contentW) / 2
	twoCol := W >= parameter.TwoColumnWidth

	textColW := contentW
	if twoCol {
		textColW = (contentW - parameter.ColumnGap) / 2
	}
	chars := float64(utf8.RuneCountInString(parameter.AboutText))
	perLine := math.Max(1, math.Floor(textColW/(parameter.BodyFont*0.5)))
	textH := math.Ceil(chars/perLine) * parameter.BodyLineHeight
	textBlockH := parameter.HeadingFont + parameter.HeadingMargin + textH + parameter.TextMargin + parameter.SocialIconSize

	var profile vmath.Rect
	var textX, textY float64
	if twoCol {
		colH := math.Max(parameter.ProfileSize, textBlockH)
		y0 := H + (H-colH)/2
		profile = vmath.R(left+(textColW-parameter.ProfileSize)/2, y0+(colH-parameter.ProfileSize)/2, parameter.ProfileSize, parameter.ProfileSize)
		textX = left + textColW + parameter.ColumnGap
		textY = y0 + (colH-textBlockH)/2
	} else {
		total := parameter.ProfileSize + parameter.ColumnGap + textBlockH
		y0 := H + math.Max(parameter.PagePadding, (H-total)/2)
		profile = vmath.R((W-parameter.ProfileSize)/2, y0, parameter.ProfileSize, parameter.ProfileSize)
		textX = left
		textY = y0 + parameter.ProfileSize + parameter.ColumnGap
	}

	cur.next(profile)
	cur.line(parameter.AboutHeading, textX, textY, parameter.HeadingFont, parameter.HeadingFont*parameter.GlyphAspect)
	textTop := textY + parameter.HeadingFont + parameter.HeadingMargin
	h.paraBase = vmath.R(textX, textTop, textColW, textH)

	iconY := textTop + textH + parameter.TextMargin
	x := textX
	for range parameter.SocialLinks {
		cur.next(vmath.R(x, iconY, parameter.SocialIconSize, parameter.SocialIconSize))
		x += parameter.SocialIconSize + parameter.SocialIconGap
	}
}
