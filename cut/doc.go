// Package cut partitions pixels with max-flow/min-cut.
//
// CutOneWay separates one key stroke (LabelA) from everything else
// (LabelB) over a gridgraph.Graph whose edge capacities come from a
// CapacityMap. Pixels landing on the LabelA side are painted and locked in
// a lock-mask so later cuts treat them as decided.
//
// MultiwayCut reduces N strokes to a sequence of such two-label cuts:
// strokes are ordered (transparent first, then by descending seed area) and
// each one is cut against the composite of the strokes after it. The last
// stroke standing takes every still-unlocked pixel connected to its seed
// through a plain scanline fill.
//
// Capacity model, with k = 2·(W+H):
//
//	locked endpoint        0
//	label edge             round(affinity/255 · k)
//	grid edge src→dst      256 · (1 + k·(1 − p²)),  p = clamp(1 − I(dst)/255, 0, 1)
//
// Dark destination pixels are cheap to cut through, so boundaries settle on
// low-intensity lines of the source raster.
//
// The max-flow solver is pluggable through WithSolver (flow.Dinic by
// default). Solver errors, including context cancellation set through
// WithContext, are returned unchanged.
package cut
