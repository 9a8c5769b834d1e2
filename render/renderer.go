package render

import (
	"image"
	"log"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"github.com/lixenwraith/folio/layout"
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/scene"
	"github.com/lixenwraith/folio/vmath"
)

// Renderer composes one terminal frame: shapes, then the home page on top
type Renderer struct {
	screen  tcell.Screen
	grid    Grid
	canvas  *Canvas
	surface *TerminalSurface
	home    *layout.Home
	loader  scene.ImageLoader

	bg       colorful.Color
	title    colorful.Color
	subtitle colorful.Color
	body     colorful.Color
	ring     colorful.Color

	textures map[textureKey]*image.RGBA
}

type textureKey struct {
	src  string
	w, h int
}

// NewRenderer draws surface and home onto screen
// loader resolves the profile and icon images, nil draws placeholders
func NewRenderer(screen tcell.Screen, grid Grid, surface *TerminalSurface, home *layout.Home, loader scene.ImageLoader) *Renderer {
	bg := hex(parameter.BackgroundColor)
	cols, rows := screen.Size()
	return &Renderer{
		screen:   screen,
		grid:     grid,
		canvas:   NewCanvas(cols, rows, bg),
		surface:  surface,
		home:     home,
		loader:   loader,
		bg:       bg,
		title:    hex(parameter.TitleColor),
		subtitle: hex(parameter.SubtitleColor),
		body:     hex(parameter.BodyColor),
		ring:     hex(parameter.IconRingColor),
		textures: make(map[textureKey]*image.RGBA),
	}
}

// Viewport returns the page size of the current screen
func (r *Renderer) Viewport() scene.Viewport {
	cols, rows := r.screen.Size()
	return r.grid.Viewport(cols, rows)
}

// Frame draws everything for now and shows the screen
func (r *Renderer) Frame(now time.Time) {
	cols, rows := r.screen.Size()
	if w, h := r.canvas.Size(); w != cols || h != rows*2 {
		r.canvas.Resize(cols, rows)
	}
	r.canvas.Clear()
	r.surface.Draw(r.canvas)

	px := r.home.Parallax()
	var glyphs, blocks []*scene.Element
	for _, e := range r.home.Elements() {
		if e.Glyph != 0 {
			glyphs = append(glyphs, e)
			continue
		}
		blocks = append(blocks, e)
	}

	for _, e := range blocks {
		op := r.opacity(e, px)
		if op < parameter.MinVisibleOpacity {
			continue
		}
		rect := e.Rect().Translate(e.Offset(now))
		src := e.Label
		if e.Class == scene.ClassSocialIcon {
			src = iconSource(e.Label)
		}
		r.drawRound(rect, src, op)
	}

	r.canvas.Flush(r.screen)

	for _, e := range glyphs {
		op := r.opacity(e, px)
		if op < parameter.MinVisibleOpacity {
			continue
		}
		rect := e.Rect().Translate(e.Offset(now))
		col := r.title
		if e.Class == scene.ClassSubtitleLetter {
			col = r.subtitle
		}
		x, y := r.grid.Cell(rect.Center())
		r.putGlyph(x, y, e.Glyph, col, op, e.Class == scene.ClassTitleLetter)
	}
	if px.AboutOpacity >= parameter.MinVisibleOpacity {
		r.drawParagraph(r.home.Paragraph(), parameter.AboutText, r.body, px.AboutOpacity)
	}

	r.screen.Show()
}

func (r *Renderer) opacity(e *scene.Element, px layout.Parallax) float64 {
	if r.home.SectionOf(e) == layout.SectionAbout {
		return px.AboutOpacity
	}
	return px.HeroOpacity
}

// putGlyph writes a character over the canvas, keeping the cell's averaged backdrop
func (r *Renderer) putGlyph(x, y int, ch rune, col colorful.Color, opacity float64, bold bool) {
	cols, rows := r.screen.Size()
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	back := r.canvas.At(x, y*2).BlendRgb(r.canvas.At(x, y*2+1), 0.5)
	style := tcell.StyleDefault.
		Foreground(toTcell(back.BlendRgb(col, opacity))).
		Background(toTcell(back)).
		Bold(bold)
	r.screen.SetContent(x, y, ch, nil, style)
}

// drawParagraph word-wraps text inside rect
func (r *Renderer) drawParagraph(rect vmath.Rect, text string, col colorful.Color, opacity float64) {
	x0, y0 := r.grid.Cell(vmath.V(rect.X, rect.Y))
	width := max(1, int(rect.W/r.grid.CellW))
	lineStep := max(1, int(math.Round(parameter.BodyLineHeight/r.grid.CellH)))

	for i, line := range wrap(text, width) {
		for j, ch := range []rune(line) {
			r.putGlyph(x0+j, y0+i*lineStep, ch, col, opacity, false)
		}
	}
}

// drawRound paints src clipped to a circle inside rect with a thin ring
func (r *Renderer) drawRound(rect vmath.Rect, src string, opacity float64) {
	tex := r.texture(src, rect)
	center := rect.Center()
	radius := math.Min(rect.W, rect.H) / 2

	x0, y0 := r.grid.SubPixel(vmath.V(rect.X, rect.Y))
	x1, y1 := r.grid.SubPixel(vmath.V(rect.Right(), rect.Bottom()))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := r.grid.SubCenter(x, y)
			d := p.Sub(center).Len() - radius
			if d > 0 {
				continue
			}
			if d > -r.grid.CellW/2 {
				r.canvas.Blend(x, y, r.ring, opacity)
				continue
			}
			b := tex.Bounds()
			tx := b.Min.X + int(vmath.Clamp((p.X-rect.X)/rect.W, 0, 0.9999)*float64(b.Dx()))
			ty := b.Min.Y + int(vmath.Clamp((p.Y-rect.Y)/rect.H, 0, 0.9999)*float64(b.Dy()))
			if col, ok := colorful.MakeColor(tex.RGBAAt(tx, ty)); ok {
				r.canvas.Blend(x, y, col, opacity)
			}
		}
	}
}

// texture loads and scales src once per size
func (r *Renderer) texture(src string, rect vmath.Rect) *image.RGBA {
	w := max(1, int(math.Ceil(rect.W/r.grid.CellW)))
	h := max(1, int(math.Ceil(rect.H/(r.grid.CellH/2))))
	key := textureKey{src: src, w: w, h: h}
	if tex, ok := r.textures[key]; ok {
		return tex
	}

	var img image.Image
	if r.loader != nil && src != "" {
		loaded, err := r.loader.Load(src)
		if err != nil {
			log.Printf("render: image %q unavailable: %v", src, err)
		} else {
			img = loaded
		}
	}
	if img == nil {
		img = scene.Placeholder(w, h)
	}

	tex := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(tex, tex.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	r.textures[key] = tex
	return tex
}

func iconSource(name string) string {
	for _, l := range parameter.SocialLinks {
		if l.Name == name {
			return l.Icon
		}
	}
	return ""
}

// wrap splits text into lines of at most width runes on word boundaries
func wrap(text string, width int) []string {
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		if len(cur) > 0 && len(cur)+1+len(w) > width {
			lines = append(lines, string(cur))
			cur = cur[:0]
		}
		for len(w) > width {
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		if len(cur) > 0 {
			cur = append(cur, ' ')
		}
		cur = append(cur, w...)
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
