package gridgraph

import (
	"fmt"
	"image"
)

// VertexKind tags the Vertex union.
type VertexKind uint8

const (
	// Normal is a pixel vertex at (X, Y).
	Normal VertexKind = iota
	// LabelA is the source super-vertex.
	LabelA
	// LabelB is the sink super-vertex.
	LabelB
)

// Vertex is a tagged union {Normal(x,y) | LabelA | LabelB}.
// X and Y are meaningful only for Normal vertices.
type Vertex struct {
	Kind VertexKind
	X, Y int
}

// Pixel returns the Normal vertex at (x, y).
func Pixel(x, y int) Vertex { return Vertex{Kind: Normal, X: x, Y: y} }

// Super-vertex values.
var (
	VertexA = Vertex{Kind: LabelA}
	VertexB = Vertex{Kind: LabelB}
)

// Point returns the pixel coordinate of a Normal vertex.
func (v Vertex) Point() image.Point { return image.Point{X: v.X, Y: v.Y} }

func (v Vertex) String() string {
	switch v.Kind {
	case LabelA:
		return "LabelA"
	case LabelB:
		return "LabelB"
	default:
		return fmt.Sprintf("(%d,%d)", v.X, v.Y)
	}
}

// Edge is an ordered (Source, Target) pair.
type Edge struct {
	Source, Target Vertex
}

// Reverse returns the paired edge with swapped endpoints.
func (e Edge) Reverse() Edge { return Edge{Source: e.Target, Target: e.Source} }

func (e Edge) String() string { return e.Source.String() + "→" + e.Target.String() }

// neighbourOffsets is the fixed out-edge order of a Normal vertex: right, down, left, up.
var neighbourOffsets = [4]image.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}
