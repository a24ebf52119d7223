// Package lazyfill is a segmentation kernel for colouring line art and
// heightmaps from a handful of user strokes.
//
// 🚀 What is lazyfill?
//
//	A single-threaded, deterministic library with two engines:
//		• Watershed growth: strokes flood a heightmap lowest level first,
//		  with an optional cleanup pass that removes small dominated regions
//		• Multiway min-cut: strokes are separated one at a time by a
//		  two-label max-flow cut on an implicit 4-connected grid graph
//
// Under the hood, everything is organized under small packages:
//
//	raster/      8-bit planes, label planes and key strokes
//	fill/        scanline flood fill and connected components
//	gridgraph/   implicit pixel graph with two label vertices, index-addressed
//	flow/        Dinic, Edmonds–Karp and Ford–Fulkerson over any indexed network
//	cut/         capacity model, two-label cut, multiway orchestration
//	watershed/   growth engine, border statistics, cleanup, inspector
//	progress/    throttled percent reporting
//	config/      TOML settings for both engines
//
// The lazyfill command (cmd/lazyfill) wraps both engines for image files.
//
// Quick ASCII example (i/o = two strokes, # = line):
//
//	ooooooooooooo
//	oo####  ###oo
//	oo#iiiiiii#oo
//	oo#iiiiiii#oo
//	oo#########oo
//
// The min-cut seals the two-pixel gap in the top edge.
//
//	go install github.com/katalvlaran/lazyfill/cmd/lazyfill@latest
package lazyfill
