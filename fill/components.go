package fill

import (
	"image"

	"github.com/katalvlaran/lazyfill/raster"
)

// SplitIntoComponents returns one representative point per 4-connected
// component of non-zero pixels of seed inside r, in row-major discovery
// order. It is destructive: every visited component is cleared from seed.
//
// Time:   O(W·H) scan plus the fills.
// Memory: O(number of spans on the fill stack).
func SplitIntoComponents(seed *raster.Gray, r image.Rectangle) []image.Point {
	r = r.Intersect(seed.Bounds())
	inside := func(x, y int) bool { return seed.Value(x, y) != 0 }
	erase := func(x, y int) { seed.SetValue(x, y, 0) }

	var points []image.Point
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if seed.Value(x, y) == 0 {
				continue
			}
			pt := image.Point{X: x, Y: y}
			points = append(points, pt)
			Scanline(r, pt, inside, erase)
		}
	}
	return points
}

// Components labels every 4-connected component of non-zero pixels of seed
// inside r through assign, calling next once per component to obtain its
// label. It returns the number of components. seed is left untouched; a
// scratch copy is consumed instead.
func Components(seed *raster.Gray, r image.Rectangle, next func(start image.Point) int32, assign func(x, y int, label int32)) int {
	return components(seed, r, false, next, assign)
}

// ComponentsByValue is Components with connectivity restricted to equal
// values: two adjacent non-zero pixels share a component only when they
// hold the same value.
func ComponentsByValue(seed *raster.Gray, r image.Rectangle, next func(start image.Point) int32, assign func(x, y int, label int32)) int {
	return components(seed, r, true, next, assign)
}

func components(seed *raster.Gray, r image.Rectangle, byValue bool, next func(start image.Point) int32, assign func(x, y int, label int32)) int {
	scratch := seed.Clone()
	r = r.Intersect(scratch.Bounds())

	count := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			ref := scratch.Value(x, y)
			if ref == 0 {
				continue
			}
			inside := func(px, py int) bool {
				v := scratch.Value(px, py)
				return v != 0 && (!byValue || v == ref)
			}
			pt := image.Point{X: x, Y: y}
			label := next(pt)
			Scanline(r, pt, inside, func(px, py int) {
				scratch.SetValue(px, py, 0)
				assign(px, py, label)
			})
			count++
		}
	}
	return count
}
