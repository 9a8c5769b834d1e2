package vmath

// Rect is an axis-aligned rectangle in page pixel space
type Rect struct {
	X, Y, W, H float64
}

// R returns a Rect
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Center returns the rectangle midpoint
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Translate returns r moved by d
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether the rectangles intersect, touching edges included
func (r Rect) Overlaps(o Rect) bool {
	return !(r.Right() < o.X || r.X > o.Right() || r.Bottom() < o.Y || r.Y > o.Bottom())
}

// Contains reports whether p lies inside r
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}
