package gridgraph

import "image"

// Graph is the implicit grid graph. It is immutable once built and safe for
// concurrent reads.
type Graph struct {
	rect image.Rectangle
	w, h int

	a, b region

	numRight int // (W-1)·H
	numDown  int // W·(H-1)
	numGrid  int // numRight + numDown
	aStart   int // first LabelA attachment edge
	bStart   int // first LabelB attachment edge
}

// New builds the graph over rect with LabelA attached to aRegion and LabelB
// attached to bRegion. Label rectangles are clipped to rect; overlapping
// rectangles within one label are merged so each pixel is attached once.
// An empty rect yields a graph with only the two label vertices.
func New(rect image.Rectangle, aRegion, bRegion []image.Rectangle) *Graph {
	rect = rect.Canon()
	g := &Graph{rect: rect, w: rect.Dx(), h: rect.Dy()}
	if g.w > 0 && g.h > 0 {
		g.numRight = (g.w - 1) * g.h
		g.numDown = g.w * (g.h - 1)
	}
	g.numGrid = g.numRight + g.numDown
	g.a = newRegion(rect, aRegion)
	g.b = newRegion(rect, bRegion)
	g.aStart = 2 * g.numGrid
	g.bStart = g.aStart + 2*g.a.size
	return g
}

// Rect returns the pixel rectangle covered by Normal vertices.
func (g *Graph) Rect() image.Rectangle { return g.rect }

// NumVertices returns W·H + 2.
func (g *Graph) NumVertices() int { return g.w*g.h + 2 }

// NumEdges returns 2·(grid edges) + 2·|A| + 2·|B|, reverses included.
func (g *Graph) NumEdges() int { return g.bStart + 2*g.b.size }

// LabelAIndex is the index of LabelA, NumVertices()-2.
func (g *Graph) LabelAIndex() int { return g.w * g.h }

// LabelBIndex is the index of LabelB, NumVertices()-1.
func (g *Graph) LabelBIndex() int { return g.w*g.h + 1 }

// LabelSize returns the number of pixels attached to the given label.
func (g *Graph) LabelSize(kind VertexKind) int {
	switch kind {
	case LabelA:
		return g.a.size
	case LabelB:
		return g.b.size
	}
	return 0
}

// InLabel reports whether pixel p is attached to the given label.
func (g *Graph) InLabel(kind VertexKind, p image.Point) bool {
	switch kind {
	case LabelA:
		return g.a.contains(p)
	case LabelB:
		return g.b.contains(p)
	}
	return false
}

func (g *Graph) inRect(x, y int) bool {
	return x >= g.rect.Min.X && x < g.rect.Max.X && y >= g.rect.Min.Y && y < g.rect.Max.Y
}

// VertexIndex maps v to its index, or (-1, false) for a pixel outside the rectangle.
func (g *Graph) VertexIndex(v Vertex) (int, bool) {
	switch v.Kind {
	case LabelA:
		return g.LabelAIndex(), true
	case LabelB:
		return g.LabelBIndex(), true
	}
	if !g.inRect(v.X, v.Y) {
		return -1, false
	}
	return (v.Y-g.rect.Min.Y)*g.w + (v.X - g.rect.Min.X), true
}

// VertexAt is the inverse of VertexIndex for i in [0, NumVertices()).
func (g *Graph) VertexAt(i int) Vertex {
	switch i {
	case g.LabelAIndex():
		return VertexA
	case g.LabelBIndex():
		return VertexB
	}
	return Pixel(g.rect.Min.X+i%g.w, g.rect.Min.Y+i/g.w)
}

// gridEdge decodes a forward grid edge index in [0, numGrid).
func (g *Graph) gridEdge(j int) Edge {
	if j < g.numRight {
		x, y := j%(g.w-1), j/(g.w-1)
		src := Pixel(g.rect.Min.X+x, g.rect.Min.Y+y)
		return Edge{Source: src, Target: Pixel(src.X+1, src.Y)}
	}
	j -= g.numRight
	src := Pixel(g.rect.Min.X+j%g.w, g.rect.Min.Y+j/g.w)
	return Edge{Source: src, Target: Pixel(src.X, src.Y+1)}
}

// EdgeAt is the inverse of EdgeIndex for i in [0, NumEdges()).
func (g *Graph) EdgeAt(i int) Edge {
	switch {
	case i < g.numGrid:
		return g.gridEdge(i)
	case i < g.aStart:
		return g.gridEdge(i - g.numGrid).Reverse()
	case i < g.bStart:
		return labelEdge(VertexA, g.a, i-g.aStart)
	default:
		return labelEdge(VertexB, g.b, i-g.bStart)
	}
}

// labelEdge decodes an index inside a label block: forward label→pixel
// edges first, then their reverses.
func labelEdge(label Vertex, reg region, j int) Edge {
	if j < reg.size {
		p := reg.pointAt(j)
		return Edge{Source: label, Target: Pixel(p.X, p.Y)}
	}
	p := reg.pointAt(j - reg.size)
	return Edge{Source: Pixel(p.X, p.Y), Target: label}
}

// EdgeIndex maps e to its index. Pairs that are not adjacent in the graph
// (distant pixels, two labels, a label and a pixel outside its region)
// yield (-1, false).
func (g *Graph) EdgeIndex(e Edge) (int, bool) {
	s, t := e.Source, e.Target
	switch {
	case s.Kind == Normal && t.Kind == Normal:
		return g.gridEdgeIndex(s, t)
	case s.Kind != Normal && t.Kind != Normal:
		return -1, false
	}

	label, pixel, forward := s, t, true
	if s.Kind == Normal {
		label, pixel, forward = t, s, false
	}
	reg, start := g.a, g.aStart
	if label.Kind == LabelB {
		reg, start = g.b, g.bStart
	}
	j, ok := reg.indexOf(pixel.Point())
	if !ok {
		return -1, false
	}
	if !forward {
		j += reg.size
	}
	return start + j, true
}

func (g *Graph) gridEdgeIndex(s, t Vertex) (int, bool) {
	if !g.inRect(s.X, s.Y) || !g.inRect(t.X, t.Y) {
		return -1, false
	}
	right := func(p Vertex) int { return (p.Y-g.rect.Min.Y)*(g.w-1) + (p.X - g.rect.Min.X) }
	down := func(p Vertex) int { return g.numRight + (p.Y-g.rect.Min.Y)*g.w + (p.X - g.rect.Min.X) }

	switch (image.Point{X: t.X - s.X, Y: t.Y - s.Y}) {
	case image.Point{X: 1}:
		return right(s), true
	case image.Point{X: -1}:
		return g.numGrid + right(t), true
	case image.Point{Y: 1}:
		return down(s), true
	case image.Point{Y: -1}:
		return g.numGrid + down(t), true
	}
	return -1, false
}

// ReverseIndex returns the index of the paired reverse edge of edge i.
func (g *Graph) ReverseIndex(i int) int {
	switch {
	case i < g.numGrid:
		return i + g.numGrid
	case i < g.aStart:
		return i - g.numGrid
	case i < g.bStart:
		if i-g.aStart < g.a.size {
			return i + g.a.size
		}
		return i - g.a.size
	default:
		if i-g.bStart < g.b.size {
			return i + g.b.size
		}
		return i - g.b.size
	}
}

// OutDegree returns the number of out-edges of v: up to four grid
// neighbours plus one per label region containing the pixel, or the label
// region size for a super-vertex. A pixel outside the rectangle has degree 0.
func (g *Graph) OutDegree(v Vertex) int {
	switch v.Kind {
	case LabelA:
		return g.a.size
	case LabelB:
		return g.b.size
	}
	if !g.inRect(v.X, v.Y) {
		return 0
	}
	n := 0
	for _, d := range neighbourOffsets {
		if g.inRect(v.X+d.X, v.Y+d.Y) {
			n++
		}
	}
	if g.a.contains(v.Point()) {
		n++
	}
	if g.b.contains(v.Point()) {
		n++
	}
	return n
}

// OutEdgeAt returns the i-th out-edge of v in the fixed order described in
// the package documentation, or (Edge{}, false) when i is out of range.
func (g *Graph) OutEdgeAt(v Vertex, i int) (Edge, bool) {
	if i < 0 {
		return Edge{}, false
	}
	switch v.Kind {
	case LabelA:
		if i >= g.a.size {
			return Edge{}, false
		}
		return labelEdge(VertexA, g.a, i), true
	case LabelB:
		if i >= g.b.size {
			return Edge{}, false
		}
		return labelEdge(VertexB, g.b, i), true
	}
	if !g.inRect(v.X, v.Y) {
		return Edge{}, false
	}

	for _, d := range neighbourOffsets {
		if !g.inRect(v.X+d.X, v.Y+d.Y) {
			continue
		}
		if i == 0 {
			return Edge{Source: v, Target: Pixel(v.X+d.X, v.Y+d.Y)}, true
		}
		i--
	}
	if g.a.contains(v.Point()) {
		if i == 0 {
			return Edge{Source: v, Target: VertexA}, true
		}
		i--
	}
	if g.b.contains(v.Point()) && i == 0 {
		return Edge{Source: v, Target: VertexB}, true
	}
	return Edge{}, false
}
