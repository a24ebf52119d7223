package raster

import "image"

// Labels is a dense int32 raster. The watershed engine stores one group id
// per pixel in it; 0 means unclaimed.
type Labels struct {
	Pix    []int32
	Stride int
	Rect   image.Rectangle
}

// NewLabels allocates a zeroed label raster over r.
func NewLabels(r image.Rectangle) *Labels {
	r = r.Canon()
	return &Labels{
		Pix:    make([]int32, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

// Bounds returns the covered rectangle.
func (l *Labels) Bounds() image.Rectangle { return l.Rect }

// Contains reports whether (x, y) is inside the raster.
func (l *Labels) Contains(x, y int) bool {
	return x >= l.Rect.Min.X && x < l.Rect.Max.X && y >= l.Rect.Min.Y && y < l.Rect.Max.Y
}

// At returns the label at (x, y), or 0 outside the raster.
func (l *Labels) At(x, y int) int32 {
	if !l.Contains(x, y) {
		return 0
	}
	return l.Pix[(y-l.Rect.Min.Y)*l.Stride+(x-l.Rect.Min.X)]
}

// Set stores v at (x, y). Writes outside the raster are ignored.
func (l *Labels) Set(x, y int, v int32) {
	if !l.Contains(x, y) {
		return
	}
	l.Pix[(y-l.Rect.Min.Y)*l.Stride+(x-l.Rect.Min.X)] = v
}
