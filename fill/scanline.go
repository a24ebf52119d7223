package fill

import "image"

// Scanline flood-fills the 4-connected region containing start, restricted
// to r. It returns the number of painted pixels; 0 when start is outside r
// or not inside the region.
func Scanline(r image.Rectangle, start image.Point, inside func(x, y int) bool, paint func(x, y int)) int {
	if !start.In(r) || !inside(start.X, start.Y) {
		return 0
	}

	painted := 0
	stack := []image.Point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// a span pushed earlier may have been painted through another row
		if !inside(p.X, p.Y) {
			continue
		}

		x0, x1 := p.X, p.X
		for x0-1 >= r.Min.X && inside(x0-1, p.Y) {
			x0--
		}
		for x1+1 < r.Max.X && inside(x1+1, p.Y) {
			x1++
		}
		for x := x0; x <= x1; x++ {
			paint(x, p.Y)
			painted++
		}

		for _, ny := range [2]int{p.Y - 1, p.Y + 1} {
			if ny < r.Min.Y || ny >= r.Max.Y {
				continue
			}
			inSpan := false
			for x := x0; x <= x1; x++ {
				if !inside(x, ny) {
					inSpan = false
					continue
				}
				if !inSpan {
					stack = append(stack, image.Point{X: x, Y: ny})
					inSpan = true
				}
			}
		}
	}

	return painted
}
