package gridgraph

import (
	"image"
	"sort"
)

// region is a set of disjoint rectangles enumerated rect by rect, each
// row-major. offsets[i] is the number of pixels in rects[:i].
type region struct {
	rects   []image.Rectangle
	offsets []int
	size    int
}

// newRegion clips rects to bounds and subtracts overlaps so that every
// pixel is enumerated once. Input order is preserved.
func newRegion(bounds image.Rectangle, rects []image.Rectangle) region {
	var disjoint []image.Rectangle
	for _, r := range rects {
		r = r.Intersect(bounds)
		if r.Empty() {
			continue
		}
		pieces := []image.Rectangle{r}
		for _, taken := range disjoint {
			var next []image.Rectangle
			for _, p := range pieces {
				next = append(next, subtract(p, taken)...)
			}
			pieces = next
		}
		disjoint = append(disjoint, pieces...)
	}

	reg := region{rects: disjoint, offsets: make([]int, len(disjoint))}
	for i, r := range disjoint {
		reg.offsets[i] = reg.size
		reg.size += r.Dx() * r.Dy()
	}
	return reg
}

// subtract returns r \ s as up to four disjoint rectangles.
func subtract(r, s image.Rectangle) []image.Rectangle {
	in := r.Intersect(s)
	if in.Empty() {
		return []image.Rectangle{r}
	}
	var out []image.Rectangle
	if r.Min.Y < in.Min.Y {
		out = append(out, image.Rect(r.Min.X, r.Min.Y, r.Max.X, in.Min.Y))
	}
	if in.Max.Y < r.Max.Y {
		out = append(out, image.Rect(r.Min.X, in.Max.Y, r.Max.X, r.Max.Y))
	}
	if r.Min.X < in.Min.X {
		out = append(out, image.Rect(r.Min.X, in.Min.Y, in.Min.X, in.Max.Y))
	}
	if in.Max.X < r.Max.X {
		out = append(out, image.Rect(in.Max.X, in.Min.Y, r.Max.X, in.Max.Y))
	}
	return out
}

// indexOf returns the enumeration index of p, or (-1, false) if p is not in the region.
func (reg region) indexOf(p image.Point) (int, bool) {
	for i, r := range reg.rects {
		if p.In(r) {
			return reg.offsets[i] + (p.Y-r.Min.Y)*r.Dx() + (p.X - r.Min.X), true
		}
	}
	return -1, false
}

func (reg region) contains(p image.Point) bool {
	_, ok := reg.indexOf(p)
	return ok
}

// pointAt is the inverse of indexOf for i in [0, size).
func (reg region) pointAt(i int) image.Point {
	k := sort.Search(len(reg.offsets), func(j int) bool { return reg.offsets[j] > i }) - 1
	r := reg.rects[k]
	j := i - reg.offsets[k]
	return image.Point{X: r.Min.X + j%r.Dx(), Y: r.Min.Y + j/r.Dx()}
}
