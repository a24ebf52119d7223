package cut

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/katalvlaran/lazyfill/flow"
	"github.com/katalvlaran/lazyfill/gridgraph"
	"github.com/katalvlaran/lazyfill/raster"
)

// LockDecided is OR-ed into the lock-mask for pixels won by LabelA:
// 10 + (flow.SideA << 4).
const LockDecided = 10 + uint8(flow.SideA)<<4

// CutOneWay separates seedA (LabelA) from seedB (LabelB) inside rect.
//
// Steps:
//  1. Attach LabelA/LabelB to the tight bounds of seedA/seedB and build the
//     capacity map over src, the seeds as affinities and mask.
//  2. Run the configured solver with source LabelA, sink LabelB.
//  3. Paint c into dst and OR LockDecided into mask for every pixel on the
//     LabelA side.
//
// Pixels already locked in mask are cut free at zero cost and keep their
// earlier decision. A nil mask is treated as all-unlocked scratch. An empty
// rect is a no-op.
func CutOneWay(src, seedA, seedB, mask *raster.Gray, dst draw.Image, rect image.Rectangle, c color.Color, opts ...Option) error {
	rect = rect.Canon()
	if rect.Empty() {
		return nil
	}
	o := buildOptions(opts)
	if mask == nil {
		mask = raster.NewGray(rect)
	}

	g := gridgraph.New(rect, labelRegion(seedA), labelRegion(seedB))
	caps := NewCapacityMap(g, src, seedA, seedB, mask)
	res, err := o.Solver(g, caps, g.LabelAIndex(), g.LabelBIndex(), o.Flow)
	if err != nil {
		return err
	}

	w := rect.Dx()
	won := 0
	for i := 0; i < g.LabelAIndex(); i++ {
		if res.Sides[i] != flow.SideA {
			continue
		}
		x, y := rect.Min.X+i%w, rect.Min.Y+i/w
		dst.Set(x, y, c)
		mask.SetValue(x, y, mask.Value(x, y)|LockDecided)
		won++
	}
	o.Logger.Debug("cut: one way", "rect", rect, "flow", res.MaxFlow, "won", won,
		"labelA", g.LabelSize(gridgraph.LabelA), "labelB", g.LabelSize(gridgraph.LabelB))
	return nil
}

func labelRegion(seed *raster.Gray) []image.Rectangle {
	if seed == nil {
		return nil
	}
	r := seed.ExactBounds()
	if r.Empty() {
		return nil
	}
	return []image.Rectangle{r}
}
