package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Canvas is a half-block pixel buffer, two pixels stacked per terminal cell
type Canvas struct {
	cols, rows int
	bg         colorful.Color
	px         []colorful.Color
}

// NewCanvas creates a canvas for cols x rows cells
func NewCanvas(cols, rows int, bg colorful.Color) *Canvas {
	c := &Canvas{bg: bg}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates for a new cell size and clears
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.px = make([]colorful.Color, c.cols*c.rows*2)
	c.Clear()
}

// Size returns the pixel dimensions
func (c *Canvas) Size() (int, int) {
	return c.cols, c.rows * 2
}

// Clear fills with the background
func (c *Canvas) Clear() {
	for i := range c.px {
		c.px[i] = c.bg
	}
}

// At returns the pixel at (x, y), background when out of range
func (c *Canvas) At(x, y int) colorful.Color {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows*2 {
		return c.bg
	}
	return c.px[y*c.cols+x]
}

// Blend composites col over the pixel at (x, y) with alpha in [0,1]
func (c *Canvas) Blend(x, y int, col colorful.Color, alpha float64) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows*2 || alpha <= 0 {
		return
	}
	i := y*c.cols + x
	if alpha >= 1 {
		c.px[i] = col
		return
	}
	c.px[i] = c.px[i].BlendRgb(col, alpha)
}

// Flush writes the canvas to screen as upper half blocks
func (c *Canvas) Flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.px[(row*2)*c.cols+col]
			bottom := c.px[(row*2+1)*c.cols+col]
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			screen.SetContent(col, row, '▀', nil, style)
		}
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// hex parses a color, black on failure
func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
