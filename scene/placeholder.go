package scene

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/folio/parameter"
)

// Placeholder renders the diagonal checker pattern used when a shape image fails to load
func Placeholder(w, h int) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	base := hexColor(parameter.PlaceholderBase)
	stripe := hexColor(parameter.PlaceholderStripe)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	half := parameter.PlaceholderTile / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := base
			if ((x/half)+(y/half))%2 == 1 {
				c = stripe
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func hexColor(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
