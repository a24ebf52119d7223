package raster

import (
	"image"
	"image/color"
)

// KeyStroke is a user-drawn seed marking one output region.
// Seed is a binary/alpha mask; Color is what the region is painted with.
type KeyStroke struct {
	Seed        *Gray
	Color       color.NRGBA
	Transparent bool
}

// IsTransparent reports whether the stroke paints nothing visible: either
// the flag is set or the colour is fully transparent.
func (k KeyStroke) IsTransparent() bool {
	return k.Transparent || k.Color.A == 0
}

// Area is the area of the seed's tight bounding box. A nil or empty seed
// has area 0.
func (k KeyStroke) Area() int {
	if k.Seed == nil {
		return 0
	}
	r := k.Seed.ExactBounds()
	return r.Dx() * r.Dy()
}

// IsEmpty reports whether the seed carries no pixels inside r.
func (k KeyStroke) IsEmpty(r image.Rectangle) bool {
	return k.Seed == nil || k.Seed.CountNonZero(r) == 0
}

// PaintColor is the colour written for pixels won by the stroke: the zero
// (fully transparent) colour for transparent strokes, Color otherwise.
func (k KeyStroke) PaintColor() color.NRGBA {
	if k.IsTransparent() {
		return color.NRGBA{}
	}
	return k.Color
}
