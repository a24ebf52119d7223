// Package fill implements 4-connected scanline flood fill and the
// connected-component helpers built on it.
//
// The fill is predicate driven: inside(x, y) says whether a pixel belongs
// to the region, paint(x, y) claims it. paint MUST make inside false for the
// painted pixel (clearing a seed, locking a mask, writing a group id);
// this is what terminates the fill without a visited set, so repeated fills
// over one large rectangle allocate nothing proportional to its area.
//
// Complexity:
//
//   - Scanline: O(P) predicate calls per painted pixel P, times a small
//     constant for the row above and below each span.
//   - SplitIntoComponents: O(W×H) plus the fills.
package fill
