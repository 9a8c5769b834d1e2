package render

import (
	"math"

	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/scene"
	"github.com/lixenwraith/folio/vmath"
)

// Grid maps page pixels onto terminal cells
type Grid struct {
	CellW float64
	CellH float64
}

// DefaultGrid uses the configured cell size
var DefaultGrid = Grid{CellW: parameter.CellWidthPx, CellH: parameter.CellHeightPx}

// Viewport returns the page size covered by cols x rows cells
func (g Grid) Viewport(cols, rows int) scene.Viewport {
	return scene.Viewport{Width: float64(cols) * g.CellW, Height: float64(rows) * g.CellH}
}

// Cell returns the cell containing page point p
func (g Grid) Cell(p vmath.Vec2) (int, int) {
	return int(math.Floor(p.X / g.CellW)), int(math.Floor(p.Y / g.CellH))
}

// SubPixel returns the half-cell pixel containing p
func (g Grid) SubPixel(p vmath.Vec2) (int, int) {
	return int(math.Floor(p.X / g.CellW)), int(math.Floor(p.Y / (g.CellH / 2)))
}

// SubCenter returns the page point at the center of half-cell pixel (x, y)
func (g Grid) SubCenter(x, y int) vmath.Vec2 {
	return vmath.Vec2{X: (float64(x) + 0.5) * g.CellW, Y: (float64(y) + 0.5) * g.CellH / 2}
}
