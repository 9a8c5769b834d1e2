package render

import (
	"image"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/folio/layout"
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/scene"
	"github.com/lixenwraith/folio/vmath"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func TestDistanceSigns(t *testing.T) {
	tests := []struct {
		name string
		kind scene.Kind
		p    vmath.Vec2
		in   bool
	}{
		{"circle center", scene.KindCircle, vmath.V(0, 0), true},
		{"circle outside", scene.KindCircle, vmath.V(60, 0), false},
		{"rect corner cut", scene.KindRoundedLarge, vmath.V(49, 49), false},
		{"rect edge", scene.KindRoundedLarge, vmath.V(45, 0), true},
		{"hexagon center", scene.KindHexagon, vmath.V(0, 0), true},
		{"pentagon tip", scene.KindPentagon, vmath.V(0, -48), true},
		{"pentagon below", scene.KindPentagon, vmath.V(0, 48), false},
		{"octagon corner", scene.KindOctagon, vmath.V(48, 48), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := scene.NewGeometry(tt.kind, 100)
			if got := Distance(g, tt.p) < 0; got != tt.in {
				t.Errorf("Expected inside=%v at %v, got distance %v", tt.in, tt.p, Distance(g, tt.p))
			}
		})
	}
}

func TestPolygonApothem(t *testing.T) {
	// Hexagon with radius 50 has a flat side at the apothem along the x axis
	apothem := 50 * math.Cos(math.Pi/6)
	d := polygonDistance(6, 50, vmath.V(apothem, 0))
	if math.Abs(d) > 1e-9 {
		t.Errorf("Expected zero distance on the side, got %v", d)
	}
}

func TestToLocalUndoesRotation(t *testing.T) {
	got := toLocal(vmath.V(10, 10), 90, vmath.V(10, 20))
	if math.Abs(got.X-10) > 1e-9 || math.Abs(got.Y) > 1e-9 {
		t.Errorf("Expected (10,0), got %v", got)
	}
}

func TestCanvasBlend(t *testing.T) {
	c := NewCanvas(2, 1, colorful.Color{})
	white := colorful.Color{R: 1, G: 1, B: 1}

	c.Blend(0, 0, white, 0.5)
	if got := c.At(0, 0); math.Abs(got.R-0.5) > 1e-9 {
		t.Errorf("Expected half blend, got %v", got)
	}
	c.Blend(5, 5, white, 1)
	if w, h := c.Size(); w != 2 || h != 2 {
		t.Errorf("Expected 2x2 pixels, got %dx%d", w, h)
	}
}

func TestSurfaceLifecycle(t *testing.T) {
	s := NewTerminalSurface(DefaultGrid)

	h, err := s.Create(scene.ShapeSpec{Geometry: scene.NewGeometry(scene.KindCircle, 80), Outline: "#f0f0f0"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 sprite, got %d", s.Len())
	}

	s.SetTransform(h, scene.Transform{X: 10})
	s.Destroy(h)
	s.Destroy(h)
	s.SetTransform(h, scene.Transform{X: 20})
	if s.Len() != 0 {
		t.Errorf("Expected 0 sprites, got %d", s.Len())
	}

	if _, err := s.Create(scene.ShapeSpec{}); err != ErrEmptyGeometry {
		t.Errorf("Expected ErrEmptyGeometry, got %v", err)
	}
}

func TestSurfaceDrawsImageInsideOutline(t *testing.T) {
	red := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			red.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	s := NewTerminalSurface(DefaultGrid)
	_, err := s.Create(scene.ShapeSpec{
		Geometry:     scene.NewGeometry(scene.KindRoundedSquare, 160),
		OutlineWidth: 8,
		Outline:      "#f0f0f0",
		Image:        red,
		Origin:       vmath.V(0, 0),
		Opacity:      1,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	c := NewCanvas(40, 20, colorful.Color{})
	s.Draw(c)

	// Center of the 160px square is pixel (10, 10) on the half-block grid
	if got := c.At(10, 10); got.R < 0.9 || got.G > 0.1 {
		t.Errorf("Expected image red at center, got %v", got)
	}
	// Far corner stays background
	if got := c.At(39, 39); got != (colorful.Color{}) {
		t.Errorf("Expected background far away, got %v", got)
	}
}

func TestSurfaceSetImageReplacesFill(t *testing.T) {
	red := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			red.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	s := NewTerminalSurface(DefaultGrid)
	h, err := s.Create(scene.ShapeSpec{
		Geometry:     scene.NewGeometry(scene.KindRoundedSquare, 160),
		OutlineWidth: 8,
		Outline:      "#00ff00",
		Opacity:      1,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Without pixels the interior takes the outline color
	c := NewCanvas(40, 20, colorful.Color{})
	s.Draw(c)
	if got := c.At(10, 10); got.G < 0.9 || got.R > 0.1 {
		t.Errorf("Expected outline green before the image arrives, got %v", got)
	}

	s.SetImage(h, red, false)
	s.SetImage(h+100, red, false)
	c.Clear()
	s.Draw(c)
	if got := c.At(10, 10); got.R < 0.9 || got.G > 0.1 {
		t.Errorf("Expected image red after SetImage, got %v", got)
	}
}

func TestRendererDrawsTitle(t *testing.T) {
	screen := newTestScreen(t, 160, 48)
	surface := NewTerminalSurface(DefaultGrid)
	home := layout.NewHome(DefaultGrid.Viewport(160, 48), time.Second/60)
	r := NewRenderer(screen, DefaultGrid, surface, home, nil)

	r.Frame(time.Unix(0, 0))

	e, ok := home.Element("title-0")
	if !ok {
		t.Fatal("Expected title-0 element")
	}
	x, y := DefaultGrid.Cell(e.Rect().Center())
	ch, _, _, _ := screen.GetContent(x, y)
	if ch != e.Glyph {
		t.Errorf("Expected %q at (%d,%d), got %q", e.Glyph, x, y, ch)
	}
}

func TestRendererHidesFadedSection(t *testing.T) {
	screen := newTestScreen(t, 160, 48)
	home := layout.NewHome(DefaultGrid.Viewport(160, 48), time.Second/60)
	r := NewRenderer(screen, DefaultGrid, NewTerminalSurface(DefaultGrid), home, nil)

	r.Frame(time.Unix(0, 0))

	// About heading is fully transparent at scroll zero
	e, _ := home.Element("heading-0")
	x, y := DefaultGrid.Cell(e.Rect().Center())
	cols, rows := screen.Size()
	if x >= 0 && y >= 0 && x < cols && y < rows {
		if ch, _, _, _ := screen.GetContent(x, y); ch == e.Glyph {
			t.Errorf("Expected heading hidden at scroll 0, found %q", ch)
		}
	}
}

func TestRendererDrawsAboutParagraph(t *testing.T) {
	screen := newTestScreen(t, 160, 48)
	home := layout.NewHome(DefaultGrid.Viewport(160, 48), time.Second/60)
	r := NewRenderer(screen, DefaultGrid, NewTerminalSurface(DefaultGrid), home, nil)

	home.ScrollTo(home.MaxScroll())
	for i := 0; i < 600 && home.Step(); i++ {
	}
	r.Frame(time.Unix(0, 0))

	para := home.Paragraph()
	x, y := DefaultGrid.Cell(vmath.V(para.X, para.Y))
	want := []rune(parameter.AboutText)[0]
	if ch, _, _, _ := screen.GetContent(x, y); ch != want {
		t.Errorf("Expected paragraph to start with %q at (%d,%d), got %q", want, x, y, ch)
	}
}

func TestWrap(t *testing.T) {
	lines := wrap("the quick brown fox jumps", 10)
	want := []string{"the quick", "brown fox", "jumps"}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %v", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Expected line %d %q, got %q", i, want[i], lines[i])
		}
	}

	if got := wrap("abcdefghij", 4); len(got) != 3 || got[2] != "ij" {
		t.Errorf("Expected long word split into 3, got %v", got)
	}
}
