// Package raster provides the minimal pixel-buffer capability the lazy-fill
// engines depend on.
//
// What:
//
//   - Gray: a single-channel 8-bit raster with an owned bounding rectangle.
//     It doubles as an alpha mask (image.Image / draw.Image with
//     color.AlphaModel) so seed strokes can be composited with
//     golang.org/x/image/draw.
//   - Labels: a dense int32 raster used as the group map of a watershed run.
//   - KeyStroke: a seed mask plus the colour it paints.
//
// Semantics:
//
//   - Reads outside the owned bounds return 0; writes outside are ignored.
//     Callers never need to clip before touching a raster.
//   - ExactBounds is the tight bounding box of non-zero pixels; Bounds is the
//     loose (allocated) rectangle.
//   - Clone is a deep copy; engines clone seeds before destructive passes.
//
// Complexity:
//
//   - Value/SetValue: O(1).
//   - ExactBounds, CountNonZero, Clone: O(W×H).
package raster
