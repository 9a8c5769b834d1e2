package scene

import (
	"image"

	"github.com/lixenwraith/folio/vmath"
)

// Handle identifies a renderable created by a Surface
type Handle uint64

// Transform is the animated translation and rotation of a shape relative to its origin
type Transform struct {
	X, Y     float64
	Rotation float64 // degrees
}

// ShapeSpec is everything a Surface needs to create a shape renderable
type ShapeSpec struct {
	ID           uint64
	Geometry     Geometry
	OutlineWidth float64
	Outline      string
	Source       string
	Image        image.Image
	Placeholder  bool
	Origin       vmath.Vec2
	Opacity      float64
}

// Surface is the rendering layer commanded by the animation core
// The core never reads back from it, geometry lives on the Shape
// SetImage attaches pixels to a shape created without them
type Surface interface {
	Create(spec ShapeSpec) (Handle, error)
	SetImage(h Handle, img image.Image, placeholder bool)
	SetTransform(h Handle, t Transform)
	Destroy(h Handle)
}

// ImageLoader resolves an image source into pixels
type ImageLoader interface {
	Load(src string) (image.Image, error)
}

// NopSurface discards all commands, used for headless runs and tests
type NopSurface struct {
	next Handle
}

func (s *NopSurface) Create(ShapeSpec) (Handle, error) {
	s.next++
	return s.next, nil
}

func (s *NopSurface) SetImage(Handle, image.Image, bool) {}

func (s *NopSurface) SetTransform(Handle, Transform) {}

func (s *NopSurface) Destroy(Handle) {}
