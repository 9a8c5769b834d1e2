package render

import (
	"errors"
	"image"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/scene"
	"github.com/lixenwraith/folio/vmath"
)

// ErrEmptyGeometry is returned for shapes with no drawable area
var ErrEmptyGeometry = errors.New("render: empty geometry")

// sprite is the retained state of one created shape
type sprite struct {
	spec      scene.ShapeSpec
	texture   *image.RGBA // sized to the shape in page pixels / cell width
	outline   colorful.Color
	transform scene.Transform
}

// TerminalSurface retains created shapes and rasterizes them onto a Canvas
// Owned by the loop goroutine like the rest of the scene
type TerminalSurface struct {
	grid    Grid
	sprites map[scene.Handle]*sprite
	next    scene.Handle
	glow    colorful.Color
}

// NewTerminalSurface creates an empty surface for grid
func NewTerminalSurface(grid Grid) *TerminalSurface {
	return &TerminalSurface{
		grid:    grid,
		sprites: make(map[scene.Handle]*sprite),
		glow:    hex(parameter.GlowColor),
	}
}

// Create scales the image to the shape footprint and retains it
func (s *TerminalSurface) Create(spec scene.ShapeSpec) (scene.Handle, error) {
	g := spec.Geometry
	if g.Width <= 0 || g.Height <= 0 {
		return 0, ErrEmptyGeometry
	}

	sp := &sprite{spec: spec, outline: hex(spec.Outline)}
	if spec.Image != nil {
		sp.texture = s.scale(spec.Image, g)
	}
	sp.spec.Image = nil

	s.next++
	s.sprites[s.next] = sp
	return s.next, nil
}

// SetImage replaces the sprite's texture, unknown handles are ignored
func (s *TerminalSurface) SetImage(h scene.Handle, img image.Image, placeholder bool) {
	sp, ok := s.sprites[h]
	if !ok || img == nil {
		return
	}
	sp.texture = s.scale(img, sp.spec.Geometry)
	sp.spec.Placeholder = placeholder
}

// scale fits img to the shape footprint at half-block resolution
func (s *TerminalSurface) scale(img image.Image, g scene.Geometry) *image.RGBA {
	w := max(1, int(math.Ceil(g.Width/s.grid.CellW)))
	h := max(1, int(math.Ceil(g.Height/(s.grid.CellH/2))))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// SetTransform records the latest transform, unknown handles are ignored
func (s *TerminalSurface) SetTransform(h scene.Handle, t scene.Transform) {
	if sp, ok := s.sprites[h]; ok {
		sp.transform = t
	}
}

// Destroy drops the sprite, unknown handles are ignored
func (s *TerminalSurface) Destroy(h scene.Handle) {
	delete(s.sprites, h)
}

// Len returns the number of live sprites
func (s *TerminalSurface) Len() int {
	return len(s.sprites)
}

// Draw rasterizes every sprite onto c in creation order
func (s *TerminalSurface) Draw(c *Canvas) {
	handles := make([]scene.Handle, 0, len(s.sprites))
	for h := range s.sprites {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	for _, h := range handles {
		s.drawSprite(c, s.sprites[h])
	}
}

func (s *TerminalSurface) drawSprite(c *Canvas, sp *sprite) {
	g := sp.spec.Geometry
	center := vmath.Vec2{
		X: sp.spec.Origin.X + sp.transform.X + g.Width/2,
		Y: sp.spec.Origin.Y + sp.transform.Y + g.Height/2,
	}
	rotation := sp.transform.Rotation
	opacity := sp.spec.Opacity
	if opacity <= 0 {
		opacity = parameter.ShapeOpacity
	}
	outline := sp.spec.OutlineWidth
	reach := math.Hypot(g.Width, g.Height)/2 + parameter.GlowWidthPx

	x0, y0 := s.grid.SubPixel(center.Sub(vmath.V(reach, reach)))
	x1, y1 := s.grid.SubPixel(center.Add(vmath.V(reach, reach)))
	pw, ph := c.Size()
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, pw-1), min(y1, ph-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			local := toLocal(center, rotation, s.grid.SubCenter(x, y))
			d := Distance(g, local)
			switch {
			case d <= -outline:
				c.Blend(x, y, sp.sample(local), opacity)
			case d <= 0:
				c.Blend(x, y, sp.outline, opacity)
			case d < parameter.GlowWidthPx:
				fade := 1 - d/parameter.GlowWidthPx
				c.Blend(x, y, s.glow, parameter.GlowAlpha*fade*fade*opacity)
			}
		}
	}
}

// sample maps a local point to the scaled texture, object-fit cover
func (sp *sprite) sample(local vmath.Vec2) colorful.Color {
	if sp.texture == nil {
		return sp.outline
	}
	g := sp.spec.Geometry
	b := sp.texture.Bounds()
	u := vmath.Clamp((local.X+g.Width/2)/g.Width, 0, 0.9999)
	v := vmath.Clamp((local.Y+g.Height/2)/g.Height, 0, 0.9999)
	px := sp.texture.RGBAAt(b.Min.X+int(u*float64(b.Dx())), b.Min.Y+int(v*float64(b.Dy())))
	col, ok := colorful.MakeColor(px)
	if !ok {
		return colorful.Color{}
	}
	return col
}
