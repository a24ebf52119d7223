package raster

import (
	"image"
	"image/color"
)

// Gray is a single-channel 8-bit raster. Pix holds Rect.Dy() rows of
// Stride bytes each; pixel (x, y) lives at Pix[(y-Rect.Min.Y)*Stride+(x-Rect.Min.X)].
type Gray struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// NewGray allocates a zeroed raster covering r. An empty r yields a raster
// with no pixels; every read returns 0 and every write is dropped.
func NewGray(r image.Rectangle) *Gray {
	r = r.Canon()
	w, h := r.Dx(), r.Dy()
	return &Gray{
		Pix:    make([]uint8, w*h),
		Stride: w,
		Rect:   r,
	}
}

// Bounds returns the loose (allocated) bounding rectangle.
func (g *Gray) Bounds() image.Rectangle { return g.Rect }

// ColorModel reports color.AlphaModel: a Gray used as an image is an alpha mask.
func (g *Gray) ColorModel() color.Model { return color.AlphaModel }

// At returns the pixel as color.Alpha so Gray can act as a draw source or mask.
func (g *Gray) At(x, y int) color.Color { return color.Alpha{A: g.Value(x, y)} }

// Set stores the alpha of c, making Gray a draw.Image destination.
func (g *Gray) Set(x, y int, c color.Color) {
	g.SetValue(x, y, color.AlphaModel.Convert(c).(color.Alpha).A)
}

func (g *Gray) offset(x, y int) int {
	return (y-g.Rect.Min.Y)*g.Stride + (x - g.Rect.Min.X)
}

// Value returns the pixel at (x, y), or 0 outside the bounds.
func (g *Gray) Value(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}).In(g.Rect) {
		return 0
	}
	return g.Pix[g.offset(x, y)]
}

// SetValue writes v at (x, y). Writes outside the bounds are ignored.
func (g *Gray) SetValue(x, y int, v uint8) {
	if !(image.Point{X: x, Y: y}).In(g.Rect) {
		return
	}
	g.Pix[g.offset(x, y)] = v
}

// Fill writes v into every pixel of r ∩ Bounds().
func (g *Gray) Fill(r image.Rectangle, v uint8) {
	r = r.Intersect(g.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := g.Pix[g.offset(r.Min.X, y):g.offset(r.Max.X, y)]
		for i := range row {
			row[i] = v
		}
	}
}

// Clear zeroes r ∩ Bounds().
func (g *Gray) Clear(r image.Rectangle) { g.Fill(r, 0) }

// ForEach calls fn for every pixel of r in row-major order. Pixels of r
// outside Bounds() are visited with value 0.
func (g *Gray) ForEach(r image.Rectangle, fn func(x, y int, v uint8)) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			fn(x, y, g.Value(x, y))
		}
	}
}

// ExactBounds returns the tight bounding box of all non-zero pixels, or the
// empty rectangle if there are none.
func (g *Gray) ExactBounds() image.Rectangle {
	minX, minY := g.Rect.Max.X, g.Rect.Max.Y
	maxX, maxY := g.Rect.Min.X, g.Rect.Min.Y
	found := false
	for y := g.Rect.Min.Y; y < g.Rect.Max.Y; y++ {
		base := g.offset(g.Rect.Min.X, y)
		for i, v := range g.Pix[base : base+g.Rect.Dx()] {
			if v == 0 {
				continue
			}
			x := g.Rect.Min.X + i
			found = true
			if x < minX {
				minX = x
			}
			if x+1 > maxX {
				maxX = x + 1
			}
			if y < minY {
				minY = y
			}
			maxY = y + 1
		}
	}
	if !found {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX, maxY)
}

// IsEmpty reports whether every pixel is zero.
func (g *Gray) IsEmpty() bool {
	for _, v := range g.Pix {
		if v != 0 {
			return false
		}
	}
	return true
}

// CountNonZero returns the number of non-zero pixels inside r.
func (g *Gray) CountNonZero(r image.Rectangle) int {
	r = r.Intersect(g.Rect)
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for _, v := range g.Pix[g.offset(r.Min.X, y):g.offset(r.Max.X, y)] {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy.
func (g *Gray) Clone() *Gray {
	pix := make([]uint8, len(g.Pix))
	copy(pix, g.Pix)
	return &Gray{Pix: pix, Stride: g.Stride, Rect: g.Rect}
}
