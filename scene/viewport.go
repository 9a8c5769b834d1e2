package scene

import "github.com/lixenwraith/folio/parameter"

// Viewport is the visible page area in pixels
type Viewport struct {
	Width  float64
	Height float64
}

// Mobile reports whether mobile sizing and cadence apply
func (v Viewport) Mobile() bool {
	return v.Width < parameter.MobileBreakpoint
}
