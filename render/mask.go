package render

import (
	"math"

	"github.com/lixenwraith/folio/scene"
	"github.com/lixenwraith/folio/vmath"
)

// Distance returns the signed distance from local point p to the shape edge
// p is relative to the shape center in unrotated shape space; negative is inside
func Distance(g scene.Geometry, p vmath.Vec2) float64 {
	switch g.Kind {
	case scene.KindCircle:
		return p.Len() - g.Width/2
	case scene.KindHexagon, scene.KindOctagon, scene.KindPentagon:
		return polygonDistance(g.Kind.Sides(), math.Min(g.Width, g.Height)/2, p)
	default:
		return roundedRectDistance(g.Width/2, g.Height/2, g.Corner, p)
	}
}

func roundedRectDistance(hw, hh, r float64, p vmath.Vec2) float64 {
	r = math.Min(r, math.Min(hw, hh))
	qx := math.Abs(p.X) - (hw - r)
	qy := math.Abs(p.Y) - (hh - r)
	outside := math.Hypot(math.Max(qx, 0), math.Max(qy, 0))
	inside := math.Min(math.Max(qx, qy), 0)
	return outside + inside - r
}

// polygonDistance is exact inside and a close bound outside
// Vertices point up
func polygonDistance(n int, radius float64, p vmath.Vec2) float64 {
	sector := 2 * math.Pi / float64(n)
	apothem := radius * math.Cos(math.Pi/float64(n))

	a := math.Atan2(p.Y, p.X) + math.Pi/2
	a = math.Mod(a, sector)
	if a < 0 {
		a += sector
	}
	return p.Len()*math.Cos(a-sector/2) - apothem
}

// toLocal maps a page point into shape space around center, undoing rotation in degrees
func toLocal(center vmath.Vec2, rotation float64, p vmath.Vec2) vmath.Vec2 {
	d := p.Sub(center)
	if rotation == 0 {
		return d
	}
	rad := -rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return vmath.Vec2{X: d.X*cos - d.Y*sin, Y: d.X*sin + d.Y*cos}
}
