package cut

import (
	"math"

	"github.com/katalvlaran/lazyfill/gridgraph"
	"github.com/katalvlaran/lazyfill/raster"
)

// unitScale is the capacity of the cheapest grid edge.
const unitScale = 256

// CapacityMap assigns a non-negative capacity to every edge of a
// gridgraph.Graph. It is read-only and satisfies flow.CapacityMap.
type CapacityMap struct {
	g    *gridgraph.Graph
	src  *raster.Gray
	affA *raster.Gray
	affB *raster.Gray
	mask *raster.Gray
	k    float64
}

// NewCapacityMap binds the intensity raster src, the LabelA/LabelB affinity
// rasters and the lock-mask to g. Any raster may be nil, which reads as 0.
func NewCapacityMap(g *gridgraph.Graph, src, affA, affB, mask *raster.Gray) *CapacityMap {
	r := g.Rect()
	k := float64(2 * (r.Dx() + r.Dy()))
	return &CapacityMap{g: g, src: src, affA: affA, affB: affB, mask: mask, k: k}
}

// K returns 2·(W+H).
func (c *CapacityMap) K() float64 { return c.k }

// Capacity returns the capacity of the edge with index e.
func (c *CapacityMap) Capacity(e int) int64 {
	return c.EdgeCapacity(c.g.EdgeAt(e))
}

// EdgeCapacity returns the capacity of e.
func (c *CapacityMap) EdgeCapacity(e gridgraph.Edge) int64 {
	if c.locked(e.Source) || c.locked(e.Target) {
		return 0
	}

	switch {
	case e.Source.Kind == gridgraph.LabelA:
		return c.labelCapacity(c.affA, e.Target)
	case e.Target.Kind == gridgraph.LabelA:
		return c.labelCapacity(c.affA, e.Source)
	case e.Source.Kind == gridgraph.LabelB:
		return c.labelCapacity(c.affB, e.Target)
	case e.Target.Kind == gridgraph.LabelB:
		return c.labelCapacity(c.affB, e.Source)
	}

	penalty := 1 - float64(value(c.src, e.Target.X, e.Target.Y))/255
	penalty = math.Max(0, math.Min(1, penalty))
	return int64(unitScale * (1 + c.k*(1-penalty*penalty)))
}

func (c *CapacityMap) labelCapacity(aff *raster.Gray, p gridgraph.Vertex) int64 {
	return int64(math.Round(float64(value(aff, p.X, p.Y)) / 255 * c.k))
}

func (c *CapacityMap) locked(v gridgraph.Vertex) bool {
	return v.Kind == gridgraph.Normal && value(c.mask, v.X, v.Y) != 0
}

func value(g *raster.Gray, x, y int) uint8 {
	if g == nil {
		return 0
	}
	return g.Value(x, y)
}
