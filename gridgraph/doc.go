// Package gridgraph treats a pixel rectangle plus two label super-vertices
// as an implicit, index-addressable graph for max-flow segmentation.
//
// What:
//
//   - Graph covers a W×H rectangle of Normal vertices and two extra vertices,
//     LabelA and LabelB. Each label is attached to every pixel of its label
//     region (a set of rectangles clipped to the main rectangle).
//   - Nothing is materialised: vertices and edges are computed from indices
//     on demand, so a graph over a large canvas costs O(number of label rects).
//   - Every edge has a paired reverse edge, as residual bookkeeping in
//     max-flow requires.
//
// Ordering (stable, deterministic):
//
//   - Vertices: Normal row-major, then LabelA (NumVertices-2), then LabelB
//     (NumVertices-1).
//   - Edges: "right" grid edges row-major, "down" grid edges row-major, the
//     reverses of both blocks in the same order, LabelA→pixel attachments,
//     their reverses, LabelB→pixel attachments, their reverses.
//   - Out-edges of a Normal vertex: right, down, left, up (those inside the
//     rectangle), then LabelA, then LabelB when the pixel is in the region.
//
// Index bijection:
//
//	VertexIndex(VertexAt(i)) == i  for i in [0, NumVertices())
//	EdgeIndex(EdgeAt(i))     == i  for i in [0, NumEdges())
//
// Querying an edge between non-adjacent pixels, between the two labels, or
// between a label and a pixel outside its region yields (-1, false).
//
// Complexity:
//
//   - VertexIndex/VertexAt, OutDegree: O(1) for Normal vertices.
//   - EdgeAt on label edges: O(log R) for R label rectangles; EdgeIndex
//     and label membership: O(R).
//   - Memory: O(R).
package gridgraph
