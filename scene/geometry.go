package scene

import "github.com/lixenwraith/folio/parameter"

// Kind is the outline style of a shape
type Kind uint8

const (
	KindCircle Kind = iota
	KindRoundedLarge
	KindWideRect
	KindHexagon
	KindOctagon
	KindPentagon
	KindDiamond
	KindRoundedSquare
)

// Catalog lists every kind, spawns pick uniformly from it
var Catalog = []Kind{
	KindCircle,
	KindRoundedLarge,
	KindWideRect,
	KindHexagon,
	KindOctagon,
	KindPentagon,
	KindDiamond,
	KindRoundedSquare,
}

var kindNames = [...]string{
	KindCircle:        "circle",
	KindRoundedLarge:  "rounded-lg",
	KindWideRect:      "horizontal-rect",
	KindHexagon:       "polygon-6",
	KindOctagon:       "polygon-8",
	KindPentagon:      "polygon-5",
	KindDiamond:       "diamond",
	KindRoundedSquare: "rounded-square",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Sides returns the polygon side count, 0 for non-polygons
func (k Kind) Sides() int {
	switch k {
	case KindHexagon:
		return 6
	case KindOctagon:
		return 8
	case KindPentagon:
		return 5
	case KindDiamond:
		return 4
	}
	return 0
}

// Geometry is the drawn size and clip style of a shape
type Geometry struct {
	Kind   Kind
	Size   float64 // random draw before aspect factors
	Width  float64
	Height float64
	Corner float64 // corner radius in px, Width/2 for circles

	// BaseRotation is a static rotation in degrees applied at creation
	BaseRotation float64
}

// NewGeometry derives width, height and corner style for kind at size
func NewGeometry(kind Kind, size float64) Geometry {
	g := Geometry{Kind: kind, Size: size, Width: size, Height: size}

	switch kind {
	case KindCircle:
		g.Corner = size / 2
	case KindRoundedLarge:
		g.Corner = parameter.CornerRoundedLarge
	case KindRoundedSquare:
		g.Corner = parameter.CornerRoundedSquare
	case KindWideRect:
		g.Width = size * parameter.WideRectWidthFactor
		g.Height = size * parameter.WideRectHeightFactor
		g.Corner = parameter.CornerWideRect
	case KindDiamond:
		g.BaseRotation = parameter.DiamondRotation
	}
	return g
}

// Rotates reports whether the rotation channel applies to this geometry
func (g Geometry) Rotates() bool {
	return g.Kind != KindDiamond
}

// Extent returns the larger of width and height
func (g Geometry) Extent() float64 {
	return max(g.Width, g.Height)
}
